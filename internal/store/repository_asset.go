package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/models"
)

const upsertAssetSuffix = `ON CONFLICT (theme_id, path) DO UPDATE SET
	value = excluded.value,
	attachment = excluded.attachment,
	updated_at = excluded.updated_at`

// assetRepository is the SQL implementation of [AssetRepository] over the
// "assets" table.
type assetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssetRepository constructs an [AssetRepository] backed by db.
func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating asset repository")
	return &assetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *assetRepository) ListAssets(ctx context.Context, themeID int64) ([]models.RemoteAssetRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("path", "value IS NOT NULL", "attachment IS NOT NULL").
		From("assets").
		Where(sq.Eq{"theme_id": themeID}).
		OrderBy("path").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assetRepository.ListAssets").Msg("error querying assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.RemoteAssetRecord, 0)
	for rows.Next() {
		var rec models.RemoteAssetRecord
		if err = rows.Scan(&rec.Path, &rec.HasValue, &rec.HasAttachment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *assetRepository) GetAsset(ctx context.Context, themeID int64, path string) (models.AssetRequest, error) {
	query, args, err := r.db.builder.
		Select("path", "value", "attachment").
		From("assets").
		Where(sq.And{sq.Eq{"theme_id": themeID}, sq.Eq{"path": path}}).
		ToSql()
	if err != nil {
		return models.AssetRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		asset      models.AssetRequest
		value      sql.NullString
		attachment sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&asset.Path, &value, &attachment)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.AssetRequest{}, ErrAssetNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*assetRepository.GetAsset").Msg("error selecting asset")
		return models.AssetRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if value.Valid {
		asset.Value = &value.String
	}
	if attachment.Valid {
		asset.Attachment = &attachment.String
	}

	return asset, nil
}

// SaveAsset upserts the asset. The column that is not carried by asset is
// reset to NULL so a text asset replaced by a binary one keeps a single body.
func (r *assetRepository) SaveAsset(ctx context.Context, themeID int64, asset models.AssetRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert("assets").
		Columns("theme_id", "path", "value", "attachment", "updated_at").
		Values(themeID, asset.Path, nullable(asset.Value), nullable(asset.Attachment), time.Now().UTC()).
		Suffix(upsertAssetSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*assetRepository.SaveAsset").Str("path", asset.Path).Msg("error saving asset")

		if r.db.classify(err) == MissingReference {
			return ErrThemeNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *assetRepository) DeleteAsset(ctx context.Context, themeID int64, path string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("assets").
		Where(sq.And{sq.Eq{"theme_id": themeID}, sq.Eq{"path": path}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*assetRepository.DeleteAsset").Str("path", path).Msg("error deleting asset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAssetNotFound
	}

	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
