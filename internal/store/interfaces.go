package store

import (
	"context"

	"github.com/MKhiriev/go-theme-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// ThemeRepository persists the themes served by the emulator.
type ThemeRepository interface {
	// ListThemes returns every theme ordered by name.
	ListThemes(ctx context.Context) ([]models.Theme, error)

	// CreateTheme inserts a theme and returns it with its assigned id.
	// A duplicate name yields [ErrThemeAlreadyExists].
	CreateTheme(ctx context.Context, name string) (models.Theme, error)

	// GetTheme returns the theme with the given id or [ErrThemeNotFound].
	GetTheme(ctx context.Context, themeID int64) (models.Theme, error)
}

// AssetRepository persists the assets of every theme. An asset is keyed by
// (theme id, path) and stores exactly one of value or attachment.
type AssetRepository interface {
	// ListAssets returns the asset records of a theme ordered by path.
	ListAssets(ctx context.Context, themeID int64) ([]models.RemoteAssetRecord, error)

	// GetAsset returns one asset or [ErrAssetNotFound].
	GetAsset(ctx context.Context, themeID int64, path string) (models.AssetRequest, error)

	// SaveAsset creates or replaces an asset.
	SaveAsset(ctx context.Context, themeID int64, asset models.AssetRequest) error

	// DeleteAsset removes one asset or returns [ErrAssetNotFound].
	DeleteAsset(ctx context.Context, themeID int64, path string) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
