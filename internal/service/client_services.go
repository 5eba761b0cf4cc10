package service

import (
	"github.com/go-git/go-billy/v5"

	"github.com/MKhiriev/go-theme-sync/internal/adapter"
	"github.com/MKhiriev/go-theme-sync/internal/catalog"
	"github.com/MKhiriev/go-theme-sync/internal/classifier"
	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
)

type ClientServices struct {
	SyncService  ClientSyncService
	ThemeService ClientThemeService
	Catalog      catalog.AssetCatalog
}

// NewClientServices wires the sync engine for the working directory described
// by cfg. fs must be rooted at cfg.App.WorkDir.
func NewClientServices(
	cfg *config.ClientConfig,
	fs billy.Filesystem,
	themeStore adapter.ThemeStoreAdapter,
	reporter Reporter,
	logger *logger.Logger,
) *ClientServices {
	assets := catalog.NewAssetCatalog(fs, cfg.App.WorkDir, cfg.Sync.Patterns)
	syncSvc := NewClientSyncService(
		assets,
		classifier.NewContentClassifier(),
		themeStore,
		fs,
		reporter,
		ClientSyncOptions{Concurrency: cfg.Sync.Concurrency},
		logger,
	)

	return &ClientServices{
		SyncService:  syncSvc,
		ThemeService: NewClientThemeService(themeStore),
		Catalog:      assets,
	}
}
