package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-theme-sync/internal/service"
	"github.com/MKhiriev/go-theme-sync/internal/store"
)

// errorStatusMap is checked in order, so wrapped validation failures win over
// anything they might also match.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrValidation, http.StatusUnprocessableEntity},
	{service.ErrInvalidAPIKey, http.StatusUnauthorized},

	{store.ErrThemeNotFound, http.StatusNotFound},
	{store.ErrAssetNotFound, http.StatusNotFound},
	{store.ErrThemeAlreadyExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError hides internal failures from the caller.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
