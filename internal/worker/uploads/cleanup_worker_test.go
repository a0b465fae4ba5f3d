package uploads_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-inventory/internal/domain"
	"github.com/tourism-inventory/internal/pkg/errors"
	"github.com/tourism-inventory/internal/worker/uploads"
)

type mockAssetRepository struct {
	mock.Mock
}

func (m *mockAssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *mockAssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *mockAssetRepository) Update(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *mockAssetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAssetRepository) CreateBatch(
	ctx context.Context,
	assets []*domain.Asset,
	upload *domain.GeoJSONUpload,
) (int, error) {
	args := m.Called(ctx, assets, upload)
	return args.Int(0), args.Error(1)
}

func (m *mockAssetRepository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *mockAssetRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func writeAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestSweep_RemovesOnlyExpiredUnreferencedFiles(t *testing.T) {
	dir := t.TempDir()
	imageURL := "/uploads/kept-image.jpg"

	mockRepo := &mockAssetRepository{}
	mockRepo.On("List", mock.Anything).Return([]*domain.Asset{
		{ID: 1, Name: "With Image", ImageURL: &imageURL},
		{ID: 2, Name: "Without Image"},
	}, nil)

	oldOrphan := writeAged(t, dir, "orphan.geojson", 48*time.Hour)
	oldReferenced := writeAged(t, dir, "kept-image.jpg", 48*time.Hour)
	fresh := writeAged(t, dir, "fresh.geojson", time.Minute)

	w := uploads.NewCleanupWorker(mockRepo, dir, 24*time.Hour, time.Hour, zap.NewNop())
	require.NoError(t, w.Sweep(context.Background()))

	_, err := os.Stat(oldOrphan)
	assert.True(t, os.IsNotExist(err), "expired orphan should be removed")

	_, err = os.Stat(oldReferenced)
	assert.NoError(t, err, "referenced image survives regardless of age")

	_, err = os.Stat(fresh)
	assert.NoError(t, err, "files inside the retention window survive")
}

func TestSweep_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	stamp := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(sub, stamp, stamp))

	mockRepo := &mockAssetRepository{}
	mockRepo.On("List", mock.Anything).Return([]*domain.Asset{}, nil)

	w := uploads.NewCleanupWorker(mockRepo, dir, 24*time.Hour, time.Hour, zap.NewNop())
	require.NoError(t, w.Sweep(context.Background()))

	_, err := os.Stat(sub)
	assert.NoError(t, err)
}

func TestSweep_RepositoryFailureAborts(t *testing.T) {
	dir := t.TempDir()
	oldOrphan := writeAged(t, dir, "orphan.geojson", 48*time.Hour)

	mockRepo := &mockAssetRepository{}
	mockRepo.On("List", mock.Anything).Return(nil, errors.ErrDatabaseError)

	w := uploads.NewCleanupWorker(mockRepo, dir, 24*time.Hour, time.Hour, zap.NewNop())
	assert.Error(t, w.Sweep(context.Background()))

	// Nothing is removed when the reference set cannot be resolved
	_, err := os.Stat(oldOrphan)
	assert.NoError(t, err)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	mockRepo := &mockAssetRepository{}

	w := uploads.NewCleanupWorker(mockRepo, t.TempDir(), 24*time.Hour, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestStart_StopsOnStopSignal(t *testing.T) {
	mockRepo := &mockAssetRepository{}

	w := uploads.NewCleanupWorker(mockRepo, t.TempDir(), 24*time.Hour, time.Hour, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after stop signal")
	}
}
