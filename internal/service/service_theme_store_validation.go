package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theme-sync/internal/validators"
	"github.com/MKhiriev/go-theme-sync/models"
)

// ThemeStoreValidationService rejects malformed input with [ErrValidation]
// before it reaches the wrapped service.
type ThemeStoreValidationService struct {
	inner     ThemeStoreService
	validator validators.Validator
}

func NewThemeStoreValidationService() ThemeStoreServiceWrapper {
	return &ThemeStoreValidationService{
		validator: validators.NewThemeStoreValidator(),
	}
}

func (v *ThemeStoreValidationService) Wrap(inner ThemeStoreService) ThemeStoreService {
	v.inner = inner
	return v
}

func (v *ThemeStoreValidationService) ListThemes(ctx context.Context) ([]models.Theme, error) {
	return v.inner.ListThemes(ctx)
}

func (v *ThemeStoreValidationService) CreateTheme(ctx context.Context, name string) (models.Theme, error) {
	if err := v.validator.Validate(ctx, models.CreateThemeRequest{Name: name}); err != nil {
		return models.Theme{}, invalid(err)
	}
	return v.inner.CreateTheme(ctx, name)
}

func (v *ThemeStoreValidationService) ListAssets(ctx context.Context, themeID int64) ([]models.RemoteAssetRecord, error) {
	if err := v.validateThemeID(ctx, themeID); err != nil {
		return nil, err
	}
	return v.inner.ListAssets(ctx, themeID)
}

func (v *ThemeStoreValidationService) GetAsset(ctx context.Context, themeID int64, path string) (models.AssetRequest, error) {
	if err := v.validateThemeID(ctx, themeID); err != nil {
		return models.AssetRequest{}, err
	}
	if err := v.validator.Validate(ctx, models.AssetRequest{Path: path}, validators.FieldPath); err != nil {
		return models.AssetRequest{}, invalid(err)
	}
	return v.inner.GetAsset(ctx, themeID, path)
}

func (v *ThemeStoreValidationService) PutAsset(ctx context.Context, themeID int64, asset models.AssetRequest) error {
	if err := v.validateThemeID(ctx, themeID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, asset); err != nil {
		return invalid(err)
	}
	return v.inner.PutAsset(ctx, themeID, asset)
}

func (v *ThemeStoreValidationService) DeleteAsset(ctx context.Context, themeID int64, path string) error {
	if err := v.validateThemeID(ctx, themeID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.AssetRequest{Path: path}, validators.FieldPath); err != nil {
		return invalid(err)
	}
	return v.inner.DeleteAsset(ctx, themeID, path)
}

func (v *ThemeStoreValidationService) validateThemeID(ctx context.Context, themeID int64) error {
	if err := v.validator.Validate(ctx, models.Theme{ID: themeID}, validators.FieldThemeID); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
