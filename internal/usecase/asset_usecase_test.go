package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/pkg/errors"
	"github.com/tourism-inventory/internal/usecase"
	"github.com/tourism-inventory/internal/usecase/dto"
)

func newAssetUseCase() (*usecase.AssetUseCase, *MockAssetRepository, *MockCacheRepository) {
	mockRepo := &MockAssetRepository{}
	mockCache := &MockCacheRepository{}
	uc := usecase.NewAssetUseCase(mockRepo, mockCache, zap.NewNop())
	return uc, mockRepo, mockCache
}

func TestAssetCreate_Success(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	req := dto.CreateAssetRequest{
		Name:        "Harbor Lighthouse",
		Category:    domain.CategoryHeritage,
		Description: "Working lighthouse from 1902",
		Lat:         "37.8045",
		Lng:         "-122.2708",
	}

	mockRepo.On("Create", mock.Anything,
		mock.MatchedBy(func(a *domain.Asset) bool {
			return a.Name == "Harbor Lighthouse" &&
				a.Category == domain.CategoryHeritage &&
				a.Latitude == 37.8045 &&
				a.Longitude == -122.2708 &&
				a.Description != nil && *a.Description == "Working lighthouse from 1902"
		}),
	).Return(&domain.Asset{ID: 1, Name: "Harbor Lighthouse"}, nil)
	mockCache.On("InvalidateGapReport", mock.Anything).Return(nil)

	created, err := uc.Create(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAssetCreate_OptionalDescription(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	req := dto.CreateAssetRequest{
		Name:     "Corner Bakery",
		Category: domain.CategoryUrban,
		Lat:      "37.80",
		Lng:      "-122.27",
	}

	mockRepo.On("Create", mock.Anything,
		mock.MatchedBy(func(a *domain.Asset) bool { return a.Description == nil }),
	).Return(&domain.Asset{ID: 2}, nil)
	mockCache.On("InvalidateGapReport", mock.Anything).Return(nil)

	_, err := uc.Create(context.Background(), req, nil)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAssetCreate_InvalidCategory(t *testing.T) {
	uc, mockRepo, _ := newAssetUseCase()

	req := dto.CreateAssetRequest{
		Name:     "Somewhere",
		Category: "industrial",
		Lat:      "37.80",
		Lng:      "-122.27",
	}

	_, err := uc.Create(context.Background(), req, nil)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidCategory.Code, appErr.Code)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssetCreate_InvalidCoordinates(t *testing.T) {
	uc, mockRepo, _ := newAssetUseCase()

	cases := []struct {
		name     string
		lat, lng string
	}{
		{"non-numeric latitude", "north", "-122.27"},
		{"non-numeric longitude", "37.80", "west"},
		{"latitude out of range", "95.0", "-122.27"},
		{"longitude out of range", "37.80", "200.0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := dto.CreateAssetRequest{
				Name:     "Somewhere",
				Category: domain.CategoryNature,
				Lat:      tc.lat,
				Lng:      tc.lng,
			}
			_, err := uc.Create(context.Background(), req, nil)
			assert.Equal(t, errors.ErrInvalidCoordinates, err)
		})
	}

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAssetUpdate_Success(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	lat, lng := 37.81, -122.26
	req := dto.UpdateAssetRequest{
		Name:      "Renamed Chapel",
		Category:  domain.CategoryReligious,
		Latitude:  &lat,
		Longitude: &lng,
	}

	mockRepo.On("Update", mock.Anything,
		mock.MatchedBy(func(a *domain.Asset) bool {
			return a.ID == 42 && a.Name == "Renamed Chapel"
		}),
	).Return(&domain.Asset{ID: 42, Name: "Renamed Chapel"}, nil)
	mockCache.On("InvalidateGapReport", mock.Anything).Return(nil)

	updated, err := uc.Update(context.Background(), 42, req)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Chapel", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestAssetUpdate_NotFound(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	lat, lng := 37.81, -122.26
	req := dto.UpdateAssetRequest{
		Name:      "Ghost",
		Category:  domain.CategoryNature,
		Latitude:  &lat,
		Longitude: &lng,
	}

	mockRepo.On("Update", mock.Anything, mock.Anything).
		Return(nil, errors.ErrAssetNotFound)

	_, err := uc.Update(context.Background(), 9999, req)
	assert.Equal(t, errors.ErrAssetNotFound, err)
	mockCache.AssertNotCalled(t, "InvalidateGapReport", mock.Anything)
}

func TestAssetDelete_Success(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	mockRepo.On("Delete", mock.Anything, int64(7)).Return(nil)
	mockCache.On("InvalidateGapReport", mock.Anything).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), 7))
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAssetDelete_NotFound(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	mockRepo.On("Delete", mock.Anything, int64(7)).Return(errors.ErrAssetNotFound)

	assert.Equal(t, errors.ErrAssetNotFound, uc.Delete(context.Background(), 7))
	mockCache.AssertNotCalled(t, "InvalidateGapReport", mock.Anything)
}

func TestAssetCreate_CacheFailureDoesNotFailWrite(t *testing.T) {
	uc, mockRepo, mockCache := newAssetUseCase()

	req := dto.CreateAssetRequest{
		Name:     "Hillside Hostel",
		Category: domain.CategoryAccommodation,
		Lat:      "37.80",
		Lng:      "-122.27",
	}

	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Asset{ID: 3}, nil)
	mockCache.On("InvalidateGapReport", mock.Anything).
		Return(errors.ErrCacheError)

	created, err := uc.Create(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}
