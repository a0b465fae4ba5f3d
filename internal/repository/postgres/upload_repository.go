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

type uploadRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUploadRepository(db *DB) repository.UploadRepository {
	return &uploadRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *uploadRepository) LastUpload(ctx context.Context) (*domain.GeoJSONUpload, error) {
	query := `
		SELECT id, filename, original_name, features_total, items_added, uploaded_at
		FROM geojson_uploads
		ORDER BY id DESC
		LIMIT 1
	`

	var u domain.GeoJSONUpload
	err := r.db.QueryRowContext(ctx, query).Scan(
		&u.ID, &u.Filename, &u.OriginalName,
		&u.FeaturesTotal, &u.ItemsAdded, &u.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNoUploadFound
	}
	if err != nil {
		r.logger.Error("Failed to get last upload", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &u, nil
}
