package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tourism-inventory/internal/pkg/utils"
	"github.com/tourism-inventory/internal/usecase"
	"go.uber.org/zap"
)

// ReportHandler serves the gap-analysis report.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// GapAnalysis - GET /api/gap-analysis
func (h *ReportHandler) GapAnalysis(c *fiber.Ctx) error {
	report, err := h.reportUC.GapAnalysis(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(report)
}
