package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/service"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces api key authentication.
//
// It expects "Authorization: Bearer <api key>" and checks the key through
// [service.AuthService.Authenticate]. Requests without a header, with a
// malformed header or with a wrong key are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		apiKey, err := getAPIKeyFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if err = h.services.AuthService.Authenticate(r.Context(), apiKey); err != nil {
			if !errors.Is(err, service.ErrInvalidAPIKey) {
				log.Err(err).Str("func", "*Handler.auth").Msg("unexpected error during authentication")
			}
			utils.WriteError(w, service.ErrInvalidAPIKey.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getAPIKeyFromAuthHeader extracts the key from a raw "Authorization" value
// of the form:
//
//	Authorization: Bearer 0f3c...
func getAPIKeyFromAuthHeader(authHeader string) (string, error) {
	scheme, apiKey, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return "", ErrEmptyAPIKey
	}

	return apiKey, nil
}
