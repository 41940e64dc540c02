package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/upload"
)

// Handlers groups everything mounted under /api
type Handlers struct {
	Page   *PageHandler
	Status *StatusHandler
	Export *ExportHandler
	Upload *upload.Handler
}

func (h *Handlers) Register(api fiber.Router) {
	api.Get("/", h.Status.Root)
	api.Post("/status", h.Status.CreateStatusCheck)
	api.Get("/status", h.Status.ListStatusChecks)
	api.Get("/royalty-free-sounds", h.Status.RoyaltyFreeSounds)

	pages := api.Group("/pages")
	pages.Post("/", h.Page.CreatePage)
	pages.Get("/", h.Page.ListPages)
	pages.Get("/:id", h.Page.GetPage)
	pages.Put("/:id", h.Page.UpdatePage)
	pages.Delete("/:id", h.Page.DeletePage)

	pages.Post("/:id/components", h.Page.AddComponent)
	pages.Put("/:id/components/:componentId", h.Page.UpdateComponent)
	pages.Delete("/:id/components/:componentId", h.Page.DeleteComponent)

	pages.Post("/:id/export", h.Export.ExportPage)
	pages.Post("/:id/embed-code", h.Export.EmbedCode)
	pages.Post("/:id/ftp-upload", h.Export.FTPUpload)
	pages.Post("/:id/email", h.Export.EmailPage)

	h.Upload.Register(api)
}
