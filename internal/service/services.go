package service

import (
	"fmt"

	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/store"
	"github.com/MKhiriev/go-theme-sync/models"
)

type Services struct {
	AuthService       AuthService
	ThemeStoreService ThemeStoreService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	themeStore := NewThemeStoreService(storages.ThemeRepository, storages.AssetRepository, logger)

	return &Services{
		AuthService:       authService,
		ThemeStoreService: NewThemeStoreValidationService().Wrap(themeStore),
		AppInfoService:    appInfoService,
	}, nil
}
