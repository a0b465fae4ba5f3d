package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/pkg/errors"
	"github.com/tourism-inventory/internal/pkg/utils"
	"github.com/tourism-inventory/internal/usecase/dto"
	"go.uber.org/zap"
)

// IngestUseCase runs the GeoJSON bulk-ingestion pipeline: read the saved
// upload, parse it strictly, classify each Point feature, insert the whole
// batch in one transaction and clean the temporary file up.
type IngestUseCase struct {
	assetRepo repository.AssetRepository
	cache     repository.CacheRepository
	logger    *zap.Logger
	timeout   time.Duration
}

func NewIngestUseCase(
	assetRepo repository.AssetRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	timeout time.Duration,
) *IngestUseCase {
	return &IngestUseCase{
		assetRepo: assetRepo,
		cache:     cache,
		logger:    logger,
		timeout:   timeout,
	}
}

// IngestFile ingests the GeoJSON file stored at path. The file is removed
// after the transaction attempt whether or not it succeeded; cleanup
// failures never change the reported result.
func (uc *IngestUseCase) IngestFile(
	ctx context.Context,
	path string,
	storedName string,
	originalName string,
) (*dto.IngestResponse, error) {
	defer uc.removeUpload(path)

	data, err := os.ReadFile(path)
	if err != nil {
		uc.logger.Error("Failed to read uploaded file", zap.String("path", path), zap.Error(err))
		return nil, errors.ErrFileError
	}

	fc, err := domain.ParseFeatureCollection(data)
	if err != nil {
		uc.logger.Warn("Rejected GeoJSON upload",
			zap.String("file", originalName),
			zap.Error(err),
		)
		return nil, errors.ErrInvalidGeoJSON.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	assets := uc.collectAssets(fc)

	upload := &domain.GeoJSONUpload{
		Filename:      storedName,
		OriginalName:  originalName,
		FeaturesTotal: len(fc.Features),
	}

	// Bounded timeout so the batch transaction cannot hold locks forever.
	txCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	added, err := uc.assetRepo.CreateBatch(txCtx, assets, upload)
	if err != nil {
		uc.logger.Error("Batch ingestion failed",
			zap.String("file", originalName),
			zap.Int("candidates", len(assets)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("GeoJSON ingested",
		zap.String("file", originalName),
		zap.Int("features_total", len(fc.Features)),
		zap.Int("items_added", added),
	)

	if err := uc.cache.InvalidateGapReport(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate gap report cache", zap.Error(err))
	}

	return &dto.IngestResponse{
		Message:       fmt.Sprintf("GeoJSON processed successfully. %d items added to inventory.", added),
		Filename:      storedName,
		FeaturesTotal: len(fc.Features),
		ItemsAdded:    added,
	}, nil
}

// collectAssets filters the feature sequence down to insertable rows.
// A feature qualifies only when it is a Point with a usable name and an
// in-range numeric coordinate pair; everything else is skipped silently.
func (uc *IngestUseCase) collectAssets(fc *domain.FeatureCollection) []*domain.Asset {
	assets := make([]*domain.Asset, 0, len(fc.Features))

	for _, feature := range fc.Features {
		lon, lat, ok := feature.Geometry.PointCoordinates()
		if !ok {
			continue
		}
		if !utils.ValidateCoordinates(lat, lon) {
			continue
		}

		name := feature.DisplayName()
		if name == "" {
			continue
		}

		props := feature.StringProperties()
		assets = append(assets, &domain.Asset{
			Name:        name,
			Category:    domain.ClassifyProperties(props),
			Description: feature.DescriptionText(),
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return assets
}

func (uc *IngestUseCase) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		uc.logger.Warn("Failed to remove uploaded file", zap.String("path", path), zap.Error(err))
	}
}
