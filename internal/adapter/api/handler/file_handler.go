package handler

import (
	"fmt"
	"io"

	"estatehub/internal/domain/service"
	"estatehub/internal/usecase"
	"estatehub/pkg/errors"
	"estatehub/pkg/logger"
	"estatehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) uploadInput(c echo.Context, filename string) usecase.UploadInput {
	uid, _ := c.Get("uid").(string)
	return usecase.UploadInput{
		Filename:   filename,
		EntityType: c.FormValue("entity_type"),
		EntityID:   c.FormValue("entity_id"),
		UploadedBy: uid,
	}
}

// UploadImage accepts a multipart image under the "file" field. The "kind"
// field picks the compression preset; anything other than "floor-plan"
// falls back to the document preset.
func (h *FileHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received image upload: %s, size: %d bytes", file.Filename, file.Size)

	// Reject on the declared size before buffering the body.
	if file.Size > service.MaxImageBytes {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("Image exceeds the %dMB limit", service.MaxImageBytes/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}

	meta, err := h.fileUseCase.UploadImage(c.Request().Context(), data, c.FormValue("kind"), h.uploadInput(c, file.Filename))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, meta)
}

func (h *FileHandler) UploadDocument(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received document upload: %s, size: %d bytes", file.Filename, file.Size)

	if file.Size > service.MaxPDFBytes {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("Document exceeds the %dMB limit", service.MaxPDFBytes/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}

	meta, err := h.fileUseCase.UploadDocument(c.Request().Context(), data, h.uploadInput(c, file.Filename))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, meta)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	if err := h.fileUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *FileHandler) ListFiles(c echo.Context) error {
	entityType := c.QueryParam("entity_type")
	entityID := c.QueryParam("entity_id")
	if entityType == "" || entityID == "" {
		return response.Error(c, errors.BadRequest("entity_type and entity_id are required", nil))
	}

	files, err := h.fileUseCase.ListByEntity(c.Request().Context(), entityType, entityID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, files)
}

func (h *FileHandler) ListObjects(c echo.Context) error {
	objects, err := h.fileUseCase.ListObjects(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, objects)
}
