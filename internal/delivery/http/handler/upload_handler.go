package handler

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tourism-inventory/internal/domain/repository"
	"github.com/tourism-inventory/internal/pkg/errors"
	"github.com/tourism-inventory/internal/pkg/utils"
	"github.com/tourism-inventory/internal/usecase"
	"github.com/tourism-inventory/internal/usecase/dto"
	"go.uber.org/zap"
)

// UploadHandler serves GeoJSON bulk ingestion and upload bookkeeping.
type UploadHandler struct {
	ingestUC   *usecase.IngestUseCase
	uploadRepo repository.UploadRepository
	uploadDir  string
	logger     *zap.Logger
}

func NewUploadHandler(
	ingestUC *usecase.IngestUseCase,
	uploadRepo repository.UploadRepository,
	uploadDir string,
	logger *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		ingestUC:   ingestUC,
		uploadRepo: uploadRepo,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// UploadGeoJSON - POST /api/geojson-upload
func (h *UploadHandler) UploadGeoJSON(c *fiber.Ctx) error {
	file := h.uploadedFile(c)
	if file == nil {
		return utils.SendError(c, errors.ErrNoFileUploaded)
	}

	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(h.uploadDir, storedName)

	if err := c.SaveFile(file, path); err != nil {
		h.logger.Error("Failed to save GeoJSON upload", zap.String("file", file.Filename), zap.Error(err))
		return utils.SendError(c, errors.ErrFileError)
	}

	result, err := h.ingestUC.IngestFile(c.Context(), path, storedName, file.Filename)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// uploadedFile accepts the canonical "geojsonFile" field but falls back to
// the first file of any multipart field.
func (h *UploadHandler) uploadedFile(c *fiber.Ctx) *multipart.FileHeader {
	if file, err := c.FormFile("geojsonFile"); err == nil {
		return file
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	for _, files := range form.File {
		if len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

// LastUpload - GET /api/last-uploaded-geojson
func (h *UploadHandler) LastUpload(c *fiber.Ctx) error {
	upload, err := h.uploadRepo.LastUpload(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.LastUploadResponse{
		Filename:   upload.Filename,
		ItemsAdded: upload.ItemsAdded,
	})
}
