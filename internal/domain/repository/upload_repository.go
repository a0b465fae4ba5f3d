package repository

import (
	"context"

	"github.com/tourism-inventory/internal/domain"
)

// UploadRepository reads GeoJSON upload bookkeeping rows.
type UploadRepository interface {
	// LastUpload returns the most recent upload record, or
	// ErrNoUploadFound when nothing has been ingested yet.
	LastUpload(ctx context.Context) (*domain.GeoJSONUpload, error)
}
