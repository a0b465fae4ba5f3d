package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/pkg/errors"
	"go.uber.org/zap"
)

type assetRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAssetRepository(db *DB) repository.AssetRepository {
	return &assetRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const assetColumns = `id, name, category, description, latitude, longitude, image_url, created_at, updated_at`

func scanAsset(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(
		&a.ID, &a.Name, &a.Category, &a.Description,
		&a.Latitude, &a.Longitude, &a.ImageURL,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	query := `
		INSERT INTO tourism_assets (name, category, description, latitude, longitude, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + assetColumns

	row := r.db.QueryRowContext(ctx, query,
		asset.Name, asset.Category, asset.Description,
		asset.Latitude, asset.Longitude, asset.ImageURL,
	)

	created, err := scanAsset(row)
	if err != nil {
		r.logger.Error("Failed to insert asset", zap.String("name", asset.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return created, nil
}

func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM tourism_assets
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list assets", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			r.logger.Error("Failed to scan asset", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate assets", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return assets, nil
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM tourism_assets
		WHERE id = $1
	`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAssetNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get asset by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return asset, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	query := `
		UPDATE tourism_assets
		SET name = $1, category = $2, description = $3,
		    latitude = $4, longitude = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + assetColumns

	row := r.db.QueryRowContext(ctx, query,
		asset.Name, asset.Category, asset.Description,
		asset.Latitude, asset.Longitude, asset.ID,
	)

	updated, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrAssetNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update asset", zap.Int64("id", asset.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return updated, nil
}

func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tourism_assets WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete asset", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read rows affected", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAssetNotFound
	}
	return nil
}

// CreateBatch inserts the whole ingested batch plus its upload record in a
// single transaction. Any insert failure rolls everything back so no
// partial batch is ever observable.
func (r *assetRepository) CreateBatch(
	ctx context.Context,
	assets []*domain.Asset,
	upload *domain.GeoJSONUpload,
) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin batch transaction", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	const insertAsset = `
		INSERT INTO tourism_assets (name, category, description, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
	`

	inserted := 0
	for _, a := range assets {
		if _, err := tx.ExecContext(ctx, insertAsset,
			a.Name, a.Category, a.Description, a.Latitude, a.Longitude,
		); err != nil {
			r.logger.Error("Batch insert failed, rolling back",
				zap.String("name", a.Name),
				zap.Int("inserted_so_far", inserted),
				zap.Error(err),
			)
			return 0, errors.ErrDatabaseError
		}
		inserted++
	}

	if upload != nil {
		const insertUpload = `
			INSERT INTO geojson_uploads (filename, original_name, features_total, items_added)
			VALUES ($1, $2, $3, $4)
		`
		upload.ItemsAdded = inserted
		if _, err := tx.ExecContext(ctx, insertUpload,
			upload.Filename, upload.OriginalName, upload.FeaturesTotal, upload.ItemsAdded,
		); err != nil {
			r.logger.Error("Failed to record upload, rolling back", zap.Error(err))
			return 0, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit batch", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return inserted, nil
}

// CountByCategory aggregates by category, descending count. Ties resolve
// by category name ascending so the ordering is stable.
func (r *assetRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*) AS count
		FROM tourism_assets
		GROUP BY category
		ORDER BY count DESC, category ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to count assets by category", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	counts := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			r.logger.Error("Failed to scan category count", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate category counts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}

func (r *assetRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tourism_assets"); err != nil {
		r.logger.Error("Failed to count assets", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
