package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/services"
)

// ExportHandler serves the outward operations on a page: download, embed
// snippet, FTP publish and email share.
type ExportHandler struct {
	exportService  *services.ExportService
	publishService *services.PublishService
	shareService   *services.ShareService
}

func NewExportHandler(exportService *services.ExportService, publishService *services.PublishService, shareService *services.ShareService) *ExportHandler {
	return &ExportHandler{
		exportService:  exportService,
		publishService: publishService,
		shareService:   shareService,
	}
}

// ExportPage godoc
// @Summary Export a page
// @Description Download the page as a standalone document. format is html (default), json or iframe, from the body or the query string.
// @Tags Export
// @Accept json
// @Produce html
// @Param id path string true "Page ID"
// @Param format query string false "Export format"
// @Param request body models.ExportRequest false "Export options"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /pages/{id}/export [post]
func (h *ExportHandler) ExportPage(c *fiber.Ctx) error {
	var req models.ExportRequest
	if err := bind(c, &req, true); err != nil {
		return err
	}
	if req.Format == "" {
		req.Format = c.Query("format")
	}

	res, err := h.exportService.Export(c.UserContext(), c.Params("id"), req.Format)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.FileName))
	return c.Send(res.Content)
}

// EmbedCode godoc
// @Summary Generate an embed snippet
// @Tags Export
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param request body models.EmbedCodeRequest false "iframe (default), javascript or html"
// @Success 200 {object} models.EmbedCodeResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /pages/{id}/embed-code [post]
func (h *ExportHandler) EmbedCode(c *fiber.Ctx) error {
	var req models.EmbedCodeRequest
	if err := bind(c, &req, true); err != nil {
		return err
	}
	if req.Format == "" {
		req.Format = c.Query("format")
	}

	res, err := h.exportService.EmbedCode(c.UserContext(), c.Params("id"), req.Format)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// FTPUpload godoc
// @Summary Publish a page over FTP
// @Description Credentials are used for this request only and never stored.
// @Tags Export
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param request body models.FTPUploadRequest true "FTP target"
// @Success 200 {object} models.FTPUploadResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /pages/{id}/ftp-upload [post]
func (h *ExportHandler) FTPUpload(c *fiber.Ctx) error {
	var req models.FTPUploadRequest
	if err := bind(c, &req, false); err != nil {
		return err
	}
	if req.RemotePath == "" {
		req.RemotePath = "/"
	}

	res, err := h.publishService.FTPUpload(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// EmailPage godoc
// @Summary Share a page by email
// @Tags Export
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param request body models.EmailRequest true "Recipient and message"
// @Success 200 {object} models.EmailResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /pages/{id}/email [post]
func (h *ExportHandler) EmailPage(c *fiber.Ctx) error {
	var req models.EmailRequest
	if err := bind(c, &req, false); err != nil {
		return err
	}

	res, err := h.shareService.Email(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
