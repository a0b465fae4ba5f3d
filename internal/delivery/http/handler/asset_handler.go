package handler

import (
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tourism-inventory/internal/pkg/errors"
	"github.com/tourism-inventory/internal/pkg/utils"
	"github.com/tourism-inventory/internal/pkg/validator"
	"github.com/tourism-inventory/internal/usecase"
	"github.com/tourism-inventory/internal/usecase/dto"
	"go.uber.org/zap"
)

// AssetHandler serves the single-asset CRUD surface.
type AssetHandler struct {
	assetUC   *usecase.AssetUseCase
	uploadDir string
	publicURL string
	logger    *zap.Logger
}

func NewAssetHandler(
	assetUC *usecase.AssetUseCase,
	uploadDir string,
	publicURL string,
	logger *zap.Logger,
) *AssetHandler {
	return &AssetHandler{
		assetUC:   assetUC,
		uploadDir: uploadDir,
		publicURL: publicURL,
		logger:    logger,
	}
}

// List - GET /api/assets
func (h *AssetHandler) List(c *fiber.Ctx) error {
	assets, err := h.assetUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(assets)
}

// Create - POST /api/assets (multipart form, optional image file)
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrMissingFields)
	}

	var imageURL *string
	if file, err := c.FormFile("dataFile"); err == nil && file != nil {
		storedName := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.uploadDir, storedName)); err != nil {
			h.logger.Error("Failed to save asset image", zap.String("file", file.Filename), zap.Error(err))
			return utils.SendError(c, errors.ErrFileError)
		}
		url := h.publicURL + "/" + storedName
		imageURL = &url
	}

	asset, err := h.assetUC.Create(c.Context(), req, imageURL)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(asset)
}

// Update - PUT /api/assets/:id (JSON or form)
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrMissingFields)
	}

	asset, err := h.assetUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(asset)
}

// Delete - DELETE /api/assets/:id
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.assetUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Asset deleted successfully."})
}
