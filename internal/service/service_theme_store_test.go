package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-theme-sync/internal/catalog"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/mock"
	"github.com/MKhiriev/go-theme-sync/internal/store"
	"github.com/MKhiriev/go-theme-sync/internal/validators"
	"github.com/MKhiriev/go-theme-sync/models"
)

func strPtr(s string) *string { return &s }

// ─────────────────────────────────────────────
// themeStoreService
// ─────────────────────────────────────────────

func newThemeStoreFixture(t *testing.T) (ThemeStoreService, *mock.MockThemeRepository, *mock.MockAssetRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	themes := mock.NewMockThemeRepository(ctrl)
	assets := mock.NewMockAssetRepository(ctrl)

	return NewThemeStoreService(themes, assets, logger.Nop()), themes, assets
}

func TestThemeStoreService_CreateTheme_TrimsName(t *testing.T) {
	svc, themes, _ := newThemeStoreFixture(t)

	themes.EXPECT().CreateTheme(gomock.Any(), "Dawn").Return(models.Theme{ID: 1, Name: "Dawn"}, nil)

	theme, err := svc.CreateTheme(context.Background(), "  Dawn ")
	require.NoError(t, err)
	assert.Equal(t, models.Theme{ID: 1, Name: "Dawn"}, theme)
}

func TestThemeStoreService_CreateTheme_Duplicate(t *testing.T) {
	svc, themes, _ := newThemeStoreFixture(t)

	themes.EXPECT().CreateTheme(gomock.Any(), "Dawn").Return(models.Theme{}, store.ErrThemeAlreadyExists)

	_, err := svc.CreateTheme(context.Background(), "Dawn")
	assert.ErrorIs(t, err, store.ErrThemeAlreadyExists)
}

func TestThemeStoreService_AssetOperations_UnknownTheme(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(ThemeStoreService) error
	}{
		{name: "list", call: func(s ThemeStoreService) error { _, err := s.ListAssets(ctx, 9); return err }},
		{name: "get", call: func(s ThemeStoreService) error { _, err := s.GetAsset(ctx, 9, "assets/a.css"); return err }},
		{name: "put", call: func(s ThemeStoreService) error {
			return s.PutAsset(ctx, 9, models.AssetRequest{Path: "assets/a.css", Value: strPtr("a")})
		}},
		{name: "delete", call: func(s ThemeStoreService) error { return s.DeleteAsset(ctx, 9, "assets/a.css") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the asset repository mock has no expectations: it must not be reached
			svc, themes, _ := newThemeStoreFixture(t)
			themes.EXPECT().GetTheme(gomock.Any(), int64(9)).Return(models.Theme{}, store.ErrThemeNotFound)

			assert.ErrorIs(t, tt.call(svc), store.ErrThemeNotFound)
		})
	}
}

func TestThemeStoreService_PutThenList(t *testing.T) {
	svc, themes, assets := newThemeStoreFixture(t)
	ctx := context.Background()
	asset := models.AssetRequest{Path: "assets/a.css", Value: strPtr("a{}")}

	themes.EXPECT().GetTheme(gomock.Any(), int64(1)).Return(models.Theme{ID: 1, Name: "Dawn"}, nil).Times(2)
	gomock.InOrder(
		assets.EXPECT().SaveAsset(gomock.Any(), int64(1), asset).Return(nil),
		assets.EXPECT().ListAssets(gomock.Any(), int64(1)).
			Return([]models.RemoteAssetRecord{{Path: "assets/a.css", HasValue: true}}, nil),
	)

	require.NoError(t, svc.PutAsset(ctx, 1, asset))

	records, err := svc.ListAssets(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.RemoteAssetRecord{{Path: "assets/a.css", HasValue: true}}, records)
}

func TestThemeStoreService_DeleteMissingAsset(t *testing.T) {
	svc, themes, assets := newThemeStoreFixture(t)

	themes.EXPECT().GetTheme(gomock.Any(), int64(1)).Return(models.Theme{ID: 1}, nil)
	assets.EXPECT().DeleteAsset(gomock.Any(), int64(1), "assets/a.css").Return(store.ErrAssetNotFound)

	assert.ErrorIs(t, svc.DeleteAsset(context.Background(), 1, "assets/a.css"), store.ErrAssetNotFound)
}

// ─────────────────────────────────────────────
// ThemeStoreValidationService
// ─────────────────────────────────────────────

func newValidatedFixture(t *testing.T) (ThemeStoreService, *mock.MockThemeStoreService) {
	t.Helper()
	inner := mock.NewMockThemeStoreService(gomock.NewController(t))
	return NewThemeStoreValidationService().Wrap(inner), inner
}

func TestValidationService_RejectsBeforeInner(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(ThemeStoreService) error
		wantErr error
	}{
		{
			name:    "blank theme name",
			call:    func(s ThemeStoreService) error { _, err := s.CreateTheme(ctx, "   "); return err },
			wantErr: validators.ErrEmptyThemeName,
		},
		{
			name:    "non-positive theme id",
			call:    func(s ThemeStoreService) error { _, err := s.ListAssets(ctx, 0); return err },
			wantErr: validators.ErrInvalidThemeID,
		},
		{
			name:    "path outside theme roots",
			call:    func(s ThemeStoreService) error { _, err := s.GetAsset(ctx, 1, "README.md"); return err },
			wantErr: catalog.ErrInvalidAssetPath,
		},
		{
			name: "both value and attachment",
			call: func(s ThemeStoreService) error {
				return s.PutAsset(ctx, 1, models.AssetRequest{Path: "assets/a.css", Value: strPtr("a"), Attachment: strPtr("YQ==")})
			},
			wantErr: validators.ErrInvalidAssetContent,
		},
		{
			name: "bad base64",
			call: func(s ThemeStoreService) error {
				return s.PutAsset(ctx, 1, models.AssetRequest{Path: "assets/a.png", Attachment: strPtr("not base64!")})
			},
			wantErr: validators.ErrInvalidAssetContent,
		},
		{
			name:    "traversal on delete",
			call:    func(s ThemeStoreService) error { return s.DeleteAsset(ctx, 1, "assets/../config.yml") },
			wantErr: catalog.ErrInvalidAssetPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newValidatedFixture(t)

			err := tt.call(svc)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationService_PassesValidInput(t *testing.T) {
	svc, inner := newValidatedFixture(t)
	ctx := context.Background()
	asset := models.AssetRequest{Path: "templates/index.liquid", Value: strPtr("{{ content }}")}

	inner.EXPECT().CreateTheme(gomock.Any(), "Dawn").Return(models.Theme{ID: 3, Name: "Dawn"}, nil)
	inner.EXPECT().PutAsset(gomock.Any(), int64(3), asset).Return(nil)
	inner.EXPECT().GetAsset(gomock.Any(), int64(3), "templates/index.liquid").Return(asset, nil)
	inner.EXPECT().ListThemes(gomock.Any()).Return([]models.Theme{{ID: 3, Name: "Dawn"}}, nil)

	_, err := svc.CreateTheme(ctx, "Dawn")
	require.NoError(t, err)
	require.NoError(t, svc.PutAsset(ctx, 3, asset))

	got, err := svc.GetAsset(ctx, 3, "templates/index.liquid")
	require.NoError(t, err)
	assert.Equal(t, asset, got)

	themes, err := svc.ListThemes(ctx)
	require.NoError(t, err)
	assert.Len(t, themes, 1)
}
