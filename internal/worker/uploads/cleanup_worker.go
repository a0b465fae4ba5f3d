package uploads

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/worker"
	"go.uber.org/zap"
)

// CleanupWorker sweeps the upload directory for orphaned files: GeoJSON
// temp files left behind by interrupted ingestions and images whose asset
// row is gone. Files referenced by a stored image_url are never touched.
type CleanupWorker struct {
	*worker.BaseWorker
	assetRepo repository.AssetRepository
	dir       string
	retention time.Duration
	interval  time.Duration
}

func NewCleanupWorker(
	assetRepo repository.AssetRepository,
	dir string,
	retention time.Duration,
	interval time.Duration,
	logger *zap.Logger,
) *CleanupWorker {
	return &CleanupWorker{
		BaseWorker: worker.NewBaseWorker("upload-cleanup", logger),
		assetRepo:  assetRepo,
		dir:        dir,
		retention:  retention,
		interval:   interval,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return nil
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				w.Logger().Error("Upload sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep deletes unreferenced files older than the retention window.
func (w *CleanupWorker) Sweep(ctx context.Context) error {
	referenced, err := w.referencedFilenames(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-w.retention)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if referenced[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(w.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			w.Logger().Warn("Failed to remove orphaned upload",
				zap.String("path", path), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		w.Logger().Info("Removed orphaned uploads", zap.Int("count", removed))
	}
	return nil
}

func (w *CleanupWorker) referencedFilenames(ctx context.Context) (map[string]bool, error) {
	assets, err := w.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool)
	for _, a := range assets {
		if a.ImageURL == nil || *a.ImageURL == "" {
			continue
		}
		// image_url is a public path; only the basename maps to a file
		// in the upload directory.
		referenced[filepath.Base(*a.ImageURL)] = true
	}
	return referenced, nil
}
