package repository

import (
	"context"

	"github.com/tourism-inventory/internal/domain"
)

// AssetRepository defines access to the tourism_assets table.
type AssetRepository interface {
	// Create inserts a single asset and returns the stored row.
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)

	// List returns all assets ordered by id ascending.
	List(ctx context.Context) ([]*domain.Asset, error)

	// GetByID returns one asset or ErrAssetNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)

	// Update rewrites an asset's mutable fields; ErrAssetNotFound for
	// unknown ids.
	Update(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)

	// Delete removes an asset; ErrAssetNotFound for unknown ids.
	Delete(ctx context.Context, id int64) error

	// CreateBatch inserts all assets and the upload record in one
	// transaction. Any failure rolls the whole batch back.
	CreateBatch(ctx context.Context, assets []*domain.Asset, upload *domain.GeoJSONUpload) (int, error)

	// CountByCategory aggregates assets per category, ordered by
	// descending count (category name ascending on ties).
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)

	// CountAll returns the total number of assets.
	CountAll(ctx context.Context) (int, error)
}
