package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
	"github.com/MKhiriev/go-theme-sync/models"
)

// maxAssetBodySize bounds PUT bodies; base64 grows binaries by a third.
const maxAssetBodySize = 64 << 20

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	themeID, _ := utils.GetThemeIDFromContext(ctx)

	records, err := h.services.ThemeStoreService.ListAssets(ctx, themeID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAssets").Int64("theme_id", themeID).Msg("error listing assets")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	themeID, _ := utils.GetThemeIDFromContext(ctx)
	path, ok := assetPathFromQuery(w, r)
	if !ok {
		return
	}

	asset, err := h.services.ThemeStoreService.GetAsset(ctx, themeID, path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Str("path", path).Msg("error getting asset")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusOK)
}

func (h *Handler) putAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	themeID, _ := utils.GetThemeIDFromContext(ctx)

	var asset models.AssetRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAssetBodySize)).Decode(&asset); err != nil {
		log.Err(err).Str("func", "*Handler.putAsset").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ThemeStoreService.PutAsset(ctx, themeID, asset); err != nil {
		log.Err(err).Str("func", "*Handler.putAsset").Str("path", asset.Path).Msg("error saving asset")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, asset, http.StatusOK)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	themeID, _ := utils.GetThemeIDFromContext(ctx)
	path, ok := assetPathFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.services.ThemeStoreService.DeleteAsset(ctx, themeID, path); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAsset").Str("path", path).Msg("error deleting asset")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func assetPathFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := r.URL.Query().Get("path")
	if path == "" {
		utils.WriteError(w, ErrMissingAssetPath.Error(), http.StatusBadRequest)
		return "", false
	}
	return path, true
}
