package repository

import (
	"context"
	"time"

	"github.com/tourism-inventory/internal/domain"
)

// CacheRepository defines cache access.
type CacheRepository interface {
	// Get fetches a raw value; nil on cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a raw value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// GetGapReport fetches the cached gap-analysis report; nil on miss.
	GetGapReport(ctx context.Context) (*domain.GapReport, error)

	// SetGapReport caches the gap-analysis report.
	SetGapReport(ctx context.Context, report *domain.GapReport, ttl time.Duration) error

	// InvalidateGapReport drops the cached report after any write.
	InvalidateGapReport(ctx context.Context) error
}
