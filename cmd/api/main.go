package main

// @title Tourism Asset Inventory API
// @version 1.0.0
// @description Web service for a tourism-asset inventory. Stores points of
// @description interest with categories and coordinates, bulk-ingests GeoJSON
// @description Point features with automatic classification, and produces a
// @description count-by-category gap-analysis report for the map UI.

// @contact.name API Support
// @contact.email support@tourism-inventory.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tourism-inventory/docs"
	"github.com/tourism-inventory/internal/config"
	httpDelivery "github.com/tourism-inventory/internal/delivery/http"
	"github.com/tourism-inventory/internal/delivery/http/handler"
	"github.com/tourism-inventory/internal/pkg/logger"
	"github.com/tourism-inventory/internal/repository/cache"
	"github.com/tourism-inventory/internal/repository/postgres"
	"github.com/tourism-inventory/internal/usecase"
	"github.com/tourism-inventory/internal/worker"
	"github.com/tourism-inventory/internal/worker/uploads"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourism Asset Inventory")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Upload directory must exist before Fiber mounts it
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory", zap.Error(err))
	}

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks, schema bootstrap and seeds
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}
	if err := db.SeedAssets(ctx); err != nil {
		log.Fatal("Failed to seed assets", zap.Error(err))
	}

	log.Info("All connections healthy, schema ready")

	// 7. Initialize repositories
	assetRepo := postgres.NewAssetRepository(db)
	uploadRepo := postgres.NewUploadRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	assetUC := usecase.NewAssetUseCase(assetRepo, cacheRepo, log)
	ingestUC := usecase.NewIngestUseCase(assetRepo, cacheRepo, log, cfg.Ingest.Timeout)
	reportUC := usecase.NewReportUseCase(assetRepo, cacheRepo, log, cfg.Cache.GapReportTTL)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	assetHandler := handler.NewAssetHandler(assetUC, cfg.Upload.Dir, cfg.Upload.PublicURL, log)
	uploadHandler := handler.NewUploadHandler(ingestUC, uploadRepo, cfg.Upload.Dir, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	healthHandler := handler.NewHealthHandler(db, assetRepo, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		assetHandler,
		uploadHandler,
		reportHandler,
		healthHandler,
	)

	// 11. Start background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var manager *worker.Manager
	if cfg.Worker.CleanupEnabled {
		manager = worker.NewManager(log)
		manager.Register(uploads.NewCleanupWorker(
			assetRepo,
			cfg.Upload.Dir,
			cfg.Worker.UploadRetention,
			cfg.Worker.CleanupInterval,
			log,
		))
		if err := manager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if manager != nil {
		workerCancel()
		if err := manager.Stop(); err != nil {
			log.Error("Worker shutdown error", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
