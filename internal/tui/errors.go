// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-theme-sync/internal/adapter"
)

// HumanizeError turns adapter errors into a message fit for the terminal.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "the theme store rejected the api key, run 'themesync configure' again"
	case errors.Is(err, adapter.ErrMissingThemeID):
		return "no theme is configured, run 'themesync configure' first"
	case errors.Is(err, adapter.ErrTransport), isNetworkError(err):
		return "the theme store is unreachable, check your network and api_url (" + err.Error() + ")"
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
