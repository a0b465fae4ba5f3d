package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/tourism-inventory/internal/config"
	"github.com/tourism-inventory/internal/delivery/http/handler"
	"github.com/tourism-inventory/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	assetHandler  *handler.AssetHandler
	uploadHandler *handler.UploadHandler
	reportHandler *handler.ReportHandler
	healthHandler *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	assetHandler *handler.AssetHandler,
	uploadHandler *handler.UploadHandler,
	reportHandler *handler.ReportHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tourism Asset Inventory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		assetHandler:  assetHandler,
		uploadHandler: uploadHandler,
		reportHandler: reportHandler,
		healthHandler: healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Map UI and uploaded files. /geojson is an alias kept for older map
	// pages that fetch boundary files from there.
	s.app.Static("/", "./public")
	s.app.Static("/uploads", s.config.Upload.Dir)
	s.app.Static("/geojson", s.config.Upload.Dir)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", s.healthHandler.Health)

	// Asset CRUD
	api.Get("/assets", s.assetHandler.List)
	api.Post("/assets", s.assetHandler.Create)
	api.Put("/assets/:id", s.assetHandler.Update)
	api.Delete("/assets/:id", s.assetHandler.Delete)

	// GeoJSON ingestion
	api.Post("/geojson-upload", s.uploadHandler.UploadGeoJSON)
	api.Get("/last-uploaded-geojson", s.uploadHandler.LastUpload)

	// Gap analysis
	api.Get("/gap-analysis", s.reportHandler.GapAnalysis)
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
