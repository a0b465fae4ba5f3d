package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/usecase/dto"
	"go.uber.org/zap"
)

// Pinger reports storage liveness.
type Pinger interface {
	Health(ctx context.Context) error
}

// HealthHandler serves the service health snapshot.
type HealthHandler struct {
	db        Pinger
	assetRepo repository.AssetRepository
	logger    *zap.Logger
}

func NewHealthHandler(db Pinger, assetRepo repository.AssetRepository, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// Health - GET /api/health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}

	if err := h.db.Health(c.Context()); err != nil {
		h.logger.Warn("Database health check failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Database = "disconnected"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	total, err := h.assetRepo.CountAll(c.Context())
	if err != nil {
		resp.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	resp.TotalAssets = total

	return c.JSON(resp)
}
