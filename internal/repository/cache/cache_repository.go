package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/domain/repository"
	"go.uber.org/zap"
)

const gapReportKey = "report:gap"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetGapReport fetches the cached gap-analysis report.
func (r *cacheRepository) GetGapReport(ctx context.Context) (*domain.GapReport, error) {
	data, err := r.Get(ctx, gapReportKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var report domain.GapReport
	if err := json.Unmarshal(data, &report); err != nil {
		r.logger.Error("Failed to unmarshal gap report from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal gap report: %w", err)
	}

	return &report, nil
}

// SetGapReport caches the gap-analysis report.
func (r *cacheRepository) SetGapReport(ctx context.Context, report *domain.GapReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		r.logger.Error("Failed to marshal gap report", zap.Error(err))
		return fmt.Errorf("marshal gap report: %w", err)
	}

	return r.Set(ctx, gapReportKey, data, ttl)
}

// InvalidateGapReport drops the cached report after a write.
func (r *cacheRepository) InvalidateGapReport(ctx context.Context) error {
	return r.Delete(ctx, gapReportKey)
}
