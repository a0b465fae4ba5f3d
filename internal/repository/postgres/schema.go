package postgres

import (
	"context"

	"github.com/tourism-inventory/internal/domain"
	"go.uber.org/zap"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS tourism_assets (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	description TEXT,
	latitude    DOUBLE PRECISION NOT NULL,
	longitude   DOUBLE PRECISION NOT NULL,
	image_url   TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS geojson_uploads (
	id             BIGSERIAL PRIMARY KEY,
	filename       TEXT NOT NULL,
	original_name  TEXT NOT NULL DEFAULT '',
	features_total INT NOT NULL DEFAULT 0,
	items_added    INT NOT NULL DEFAULT 0,
	uploaded_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tourism_assets_category ON tourism_assets (category);
`

// EnsureSchema creates the inventory tables when they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.logger.Error("Failed to ensure schema", zap.Error(err))
		return err
	}
	return nil
}

// seedAssets is the starter inventory inserted on first boot.
var seedAssets = []domain.Asset{
	{Name: "Golden Gate Hostel", Category: domain.CategoryAccommodation, Latitude: 37.8044, Longitude: -122.2712},
	{Name: "Old Town Museum", Category: domain.CategoryHeritage, Latitude: 37.8000, Longitude: -122.2650},
	{Name: "St. Mary Cathedral", Category: domain.CategoryReligious, Latitude: 37.7913, Longitude: -122.2580},
	{Name: "Central Market Hall", Category: domain.CategoryUrban, Latitude: 37.7955, Longitude: -122.2668},
	{Name: "Redwood Shelter", Category: domain.CategoryNature, Latitude: 37.8205, Longitude: -122.1820},
}

// SeedAssets inserts starter rows, but only into an empty table.
func (db *DB) SeedAssets(ctx context.Context) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tourism_assets"); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	const query = `
		INSERT INTO tourism_assets (name, category, latitude, longitude)
		VALUES ($1, $2, $3, $4)
	`
	for _, a := range seedAssets {
		if _, err := db.ExecContext(ctx, query, a.Name, a.Category, a.Latitude, a.Longitude); err != nil {
			db.logger.Error("Failed to seed asset", zap.String("name", a.Name), zap.Error(err))
			return err
		}
	}

	db.logger.Info("Seeded starter assets", zap.Int("count", len(seedAssets)))
	return nil
}
