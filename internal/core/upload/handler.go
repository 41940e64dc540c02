package upload

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
)

// Handler handles file upload HTTP requests
type Handler struct {
	uploadService *Service
}

// NewHandler creates a new upload handler
func NewHandler(uploadService *Service) *Handler {
	return &Handler{
		uploadService: uploadService,
	}
}

// Register mounts the upload routes on router
func (h *Handler) Register(router fiber.Router) {
	router.Post("/upload/image", h.UploadImage)
	router.Post("/upload/audio", h.UploadAudio)
	router.Get("/uploads/:filename", h.GetFile)
}

// UploadImage godoc
// @Summary Upload an image
// @Description Store an image for use as a page background or logo
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Success 200 {object} UploadResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /upload/image [post]
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	return h.upload(c, KindImage)
}

// UploadAudio godoc
// @Summary Upload an audio file
// @Description Store an audio file for use in an audio component
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to upload"
// @Success 200 {object} UploadResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /upload/audio [post]
func (h *Handler) UploadAudio(c *fiber.Ctx) error {
	return h.upload(c, KindAudio)
}

func (h *Handler) upload(c *fiber.Ctx, kind Kind) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperror.BadRequest("No file uploaded")
	}

	result, err := h.uploadService.UploadMultipart(c.UserContext(), fileHeader, kind)
	if err != nil {
		return err
	}

	log.Info().
		Str("kind", string(kind)).
		Str("filename", result.Filename).
		Int64("size", result.Size).
		Msg("✅ File uploaded")

	return c.JSON(fiber.Map{
		"filename": result.Filename,
		"url":      result.URL,
	})
}

// GetFile godoc
// @Summary Download an uploaded file
// @Tags Upload
// @Produce octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Router /uploads/{filename} [get]
func (h *Handler) GetFile(c *fiber.Ctx) error {
	file, err := h.uploadService.Open(c.UserContext(), c.Params("filename"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NotFound("File not found")
		}
		return apperror.Internal("Failed to read file", err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	if file.Size > 0 {
		return c.SendStream(file.Body, int(file.Size))
	}
	return c.SendStream(file.Body)
}
