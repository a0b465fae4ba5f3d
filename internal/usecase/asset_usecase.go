package usecase

import (
	"context"
	"strconv"

	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/pkg/errors"
	"github.com/tourism-inventory/internal/pkg/utils"
	"github.com/tourism-inventory/internal/usecase/dto"
	"go.uber.org/zap"
)

type AssetUseCase struct {
	assetRepo repository.AssetRepository
	cache     repository.CacheRepository
	logger    *zap.Logger
}

func NewAssetUseCase(
	assetRepo repository.AssetRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *AssetUseCase {
	return &AssetUseCase{
		assetRepo: assetRepo,
		cache:     cache,
		logger:    logger,
	}
}

func (uc *AssetUseCase) List(ctx context.Context) ([]*domain.Asset, error) {
	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list assets", zap.Error(err))
		return nil, err
	}
	return assets, nil
}

// Create validates and stores a single form-submitted asset. imageURL is
// the public path of an already saved upload, or nil.
func (uc *AssetUseCase) Create(
	ctx context.Context,
	req dto.CreateAssetRequest,
	imageURL *string,
) (*domain.Asset, error) {
	if !domain.IsValidCategory(req.Category) {
		return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": req.Category,
			"valid":    domain.ValidCategories(),
		})
	}

	lat, err := strconv.ParseFloat(req.Lat, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(req.Lng, 64)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	asset := &domain.Asset{
		Name:      req.Name,
		Category:  req.Category,
		Latitude:  lat,
		Longitude: lng,
		ImageURL:  imageURL,
	}
	// description stays optional for form submissions, matching rows
	// produced by bulk ingestion.
	if req.Description != "" {
		asset.Description = &req.Description
	}

	created, err := uc.assetRepo.Create(ctx, asset)
	if err != nil {
		uc.logger.Error("Failed to create asset", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.invalidateReport(ctx)
	return created, nil
}

func (uc *AssetUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateAssetRequest,
) (*domain.Asset, error) {
	if !domain.IsValidCategory(req.Category) {
		return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{
			"category": req.Category,
			"valid":    domain.ValidCategories(),
		})
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	asset := &domain.Asset{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
	}

	updated, err := uc.assetRepo.Update(ctx, asset)
	if err != nil {
		if err != errors.ErrAssetNotFound {
			uc.logger.Error("Failed to update asset", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}

	uc.invalidateReport(ctx)
	return updated, nil
}

func (uc *AssetUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		if err != errors.ErrAssetNotFound {
			uc.logger.Error("Failed to delete asset", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	uc.invalidateReport(ctx)
	return nil
}

// invalidateReport drops the cached gap report after any write. Cache
// failures are logged only; the write itself already succeeded.
func (uc *AssetUseCase) invalidateReport(ctx context.Context) {
	if err := uc.cache.InvalidateGapReport(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate gap report cache", zap.Error(err))
	}
}
