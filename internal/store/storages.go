package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
)

// Storages groups the repositories of the theme store emulator.
type Storages struct {
	ThemeRepository ThemeRepository
	AssetRepository AssetRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DSN, applies the
// embedded migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dialect", string(DialectFromDSN(cfg.DSN))).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ThemeRepository: NewThemeRepository(db, logger),
		AssetRepository: NewAssetRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
