package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-theme-sync/internal/adapter"
	"github.com/MKhiriev/go-theme-sync/models"
)

type clientThemeService struct {
	adapter adapter.ThemeStoreAdapter
}

func NewClientThemeService(themeStore adapter.ThemeStoreAdapter) ClientThemeService {
	return &clientThemeService{adapter: themeStore}
}

func (s *clientThemeService) ListThemes(ctx context.Context) ([]models.Theme, error) {
	themes, err := s.adapter.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
	})

	return themes, nil
}

func (s *clientThemeService) CreateTheme(ctx context.Context, name string) (models.Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Theme{}, ErrEmptyThemeName
	}

	theme, err := s.adapter.CreateTheme(ctx, name)
	if err != nil {
		return models.Theme{}, fmt.Errorf("create theme %q: %w", name, err)
	}

	return theme, nil
}
