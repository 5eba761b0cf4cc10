package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/models"
)

// themeRepository is the SQL implementation of [ThemeRepository] over the
// "themes" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type themeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThemeRepository constructs a [ThemeRepository] backed by db.
func NewThemeRepository(db *DB, logger *logger.Logger) ThemeRepository {
	logger.Debug().Msg("creating theme repository")
	return &themeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *themeRepository) ListThemes(ctx context.Context) ([]models.Theme, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name").
		From("themes").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*themeRepository.ListThemes").Msg("error querying themes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	themes := make([]models.Theme, 0)
	for rows.Next() {
		var theme models.Theme
		if err = rows.Scan(&theme.ID, &theme.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		themes = append(themes, theme)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return themes, nil
}

// CreateTheme inserts the theme and reads back the assigned id through a
// RETURNING clause, supported by both PostgreSQL and SQLite.
//
// Error handling:
//   - unique violation on name → [ErrThemeAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *themeRepository) CreateTheme(ctx context.Context, name string) (models.Theme, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("themes").
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql()
	if err != nil {
		return models.Theme{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var theme models.Theme
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&theme.ID, &theme.Name)
	})
	if err != nil {
		log.Err(err).Str("func", "*themeRepository.CreateTheme").Msg("error inserting theme")

		if r.db.classify(err) == Conflict {
			return models.Theme{}, ErrThemeAlreadyExists
		}
		return models.Theme{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return theme, nil
}

func (r *themeRepository) GetTheme(ctx context.Context, themeID int64) (models.Theme, error) {
	query, args, err := r.db.builder.
		Select("id", "name").
		From("themes").
		Where(sq.Eq{"id": themeID}).
		ToSql()
	if err != nil {
		return models.Theme{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var theme models.Theme
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&theme.ID, &theme.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Theme{}, ErrThemeNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*themeRepository.GetTheme").Msg("error selecting theme")
		return models.Theme{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return theme, nil
}
