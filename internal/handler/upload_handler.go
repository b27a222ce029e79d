package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/storage"
)

// maxUploadSize caps uploads at 10 MiB.
const maxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadHandler stores admin image uploads and returns their public URL.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// UploadResponse carries the stored file URL.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary Upload an image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "missing file", Code: "MISSING_FILE"})
	}

	if fileHeader.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "file too large", Code: "FILE_TOO_LARGE"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "unsupported file type", Code: "UNSUPPORTED_FILE_TYPE"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storage.Save(c.Request().Context(), name, contentType, src)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, UploadResponse{URL: url})
}
