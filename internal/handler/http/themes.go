package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
	"github.com/MKhiriev/go-theme-sync/models"
)

func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	themes, err := h.services.ThemeStoreService.ListThemes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listThemes").Msg("error listing themes")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, themes, http.StatusOK)
}

func (h *Handler) createTheme(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createTheme").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	theme, err := h.services.ThemeStoreService.CreateTheme(r.Context(), request.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTheme").Msg("error creating theme")
		h.writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, theme, http.StatusCreated)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteError(w, messageFromError(err, status), status)
}
