package service

import (
	"context"

	"github.com/MKhiriev/go-theme-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ThemeStoreService implements the theme store API served by the emulator.
// Asset operations fail with store.ErrThemeNotFound for an unknown theme.
type ThemeStoreService interface {
	ListThemes(ctx context.Context) ([]models.Theme, error)
	CreateTheme(ctx context.Context, name string) (models.Theme, error)

	ListAssets(ctx context.Context, themeID int64) ([]models.RemoteAssetRecord, error)
	GetAsset(ctx context.Context, themeID int64, path string) (models.AssetRequest, error)
	PutAsset(ctx context.Context, themeID int64, asset models.AssetRequest) error
	DeleteAsset(ctx context.Context, themeID int64, path string) error
}

// AuthService checks the api key presented by a client.
type AuthService interface {
	// Authenticate returns [ErrInvalidAPIKey] unless apiKey is the key the
	// emulator was started with.
	Authenticate(ctx context.Context, apiKey string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
