// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the remote theme
// store.
//
// The primary abstraction is [ThemeStoreAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPThemeStoreAdapter]) built on resty.
//
// Non-2xx responses are returned as [*APIError]; it matches the sentinels in
// errors.go through [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). Failures before a response was received wrap
// [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-theme-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/theme_store_adapter_mock.go -package=mock

// ThemeStoreAdapter defines communication with the remote theme store. Every
// asset operation applies to the theme selected at construction time.
// Implementations are safe for concurrent use.
type ThemeStoreAdapter interface {
	// ListAssets returns a record for every asset of the configured theme.
	// It is issued once per invocation that needs the remote state and is
	// never retried.
	ListAssets(ctx context.Context) ([]models.RemoteAssetRecord, error)

	// GetAsset downloads the asset at path. Exactly one of Value and
	// Attachment is set in the result.
	GetAsset(ctx context.Context, path string) (models.AssetRequest, error)

	// PutAsset creates or overwrites the asset at path with payload.
	PutAsset(ctx context.Context, path string, payload models.Payload) error

	// DeleteAsset removes the asset at path. A missing asset is reported as
	// an error matching [ErrNotFound].
	DeleteAsset(ctx context.Context, path string) error

	// ListThemes returns the themes the api key has access to.
	ListThemes(ctx context.Context) ([]models.Theme, error)

	// CreateTheme creates an empty theme called name and returns it with its
	// server-assigned id.
	CreateTheme(ctx context.Context, name string) (models.Theme, error)
}
