// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <api key>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyAPIKey is returned when the bearer scheme is present but the
	// key itself is empty.
	ErrEmptyAPIKey = errors.New("empty api key in `Authorization` header")
)

// Request errors produced while reading URL parameters.
var (
	ErrInvalidThemeID   = errors.New("theme id must be a positive integer")
	ErrMissingAssetPath = errors.New("query parameter `path` is required")
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
)
