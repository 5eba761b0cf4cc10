package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
)

// withThemeID parses the {theme_id} URL parameter and stores it in the
// request context under [utils.ThemeIDCtxKey].
func withThemeID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		themeID, err := strconv.ParseInt(chi.URLParam(r, "theme_id"), 10, 64)
		if err != nil || themeID <= 0 {
			logger.FromRequest(r).Debug().Str("theme_id", chi.URLParam(r, "theme_id")).Msg("bad theme id")
			utils.WriteError(w, ErrInvalidThemeID.Error(), http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ThemeIDCtxKey, themeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
