package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/store"
	"github.com/MKhiriev/go-theme-sync/models"
)

type themeStoreService struct {
	themeRepository store.ThemeRepository
	assetRepository store.AssetRepository

	logger *logger.Logger
}

func NewThemeStoreService(themes store.ThemeRepository, assets store.AssetRepository, logger *logger.Logger) ThemeStoreService {
	return &themeStoreService{
		themeRepository: themes,
		assetRepository: assets,
		logger:          logger,
	}
}

func (s *themeStoreService) ListThemes(ctx context.Context) ([]models.Theme, error) {
	return s.themeRepository.ListThemes(ctx)
}

func (s *themeStoreService) CreateTheme(ctx context.Context, name string) (models.Theme, error) {
	theme, err := s.themeRepository.CreateTheme(ctx, strings.TrimSpace(name))
	if err != nil {
		return models.Theme{}, err
	}

	logger.FromContext(ctx).Info().Int64("theme_id", theme.ID).Str("name", theme.Name).Msg("theme created")
	return theme, nil
}

func (s *themeStoreService) ListAssets(ctx context.Context, themeID int64) ([]models.RemoteAssetRecord, error) {
	if err := s.themeExists(ctx, themeID); err != nil {
		return nil, err
	}
	return s.assetRepository.ListAssets(ctx, themeID)
}

func (s *themeStoreService) GetAsset(ctx context.Context, themeID int64, path string) (models.AssetRequest, error) {
	if err := s.themeExists(ctx, themeID); err != nil {
		return models.AssetRequest{}, err
	}
	return s.assetRepository.GetAsset(ctx, themeID, path)
}

func (s *themeStoreService) PutAsset(ctx context.Context, themeID int64, asset models.AssetRequest) error {
	if err := s.themeExists(ctx, themeID); err != nil {
		return err
	}
	return s.assetRepository.SaveAsset(ctx, themeID, asset)
}

func (s *themeStoreService) DeleteAsset(ctx context.Context, themeID int64, path string) error {
	if err := s.themeExists(ctx, themeID); err != nil {
		return err
	}
	return s.assetRepository.DeleteAsset(ctx, themeID, path)
}

func (s *themeStoreService) themeExists(ctx context.Context, themeID int64) error {
	_, err := s.themeRepository.GetTheme(ctx, themeID)
	return err
}
