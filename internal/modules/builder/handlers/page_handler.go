package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/services"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/validation"
)

type PageHandler struct {
	pageService *services.PageService
}

func NewPageHandler(pageService *services.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// CreatePage godoc
// @Summary Create a landing page
// @Description Create an empty page. background_color defaults to #000000 and theme to dark.
// @Tags Pages
// @Accept json
// @Produce json
// @Param page body models.CreatePageRequest true "Page data"
// @Success 200 {object} models.Page
// @Failure 422 {object} map[string]interface{}
// @Router /pages [post]
func (h *PageHandler) CreatePage(c *fiber.Ctx) error {
	var req models.CreatePageRequest
	if err := bind(c, &req, false); err != nil {
		return err
	}

	page, err := h.pageService.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// ListPages godoc
// @Summary List landing pages
// @Tags Pages
// @Produce json
// @Success 200 {array} models.Page
// @Router /pages [get]
func (h *PageHandler) ListPages(c *fiber.Ctx) error {
	pages, err := h.pageService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(pages)
}

// GetPage godoc
// @Summary Get a landing page
// @Tags Pages
// @Produce json
// @Param id path string true "Page ID"
// @Success 200 {object} models.Page
// @Failure 404 {object} map[string]interface{}
// @Router /pages/{id} [get]
func (h *PageHandler) GetPage(c *fiber.Ctx) error {
	page, err := h.pageService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// UpdatePage godoc
// @Summary Update a landing page
// @Description Partial update. Only the fields present in the body change; id and created_at are ignored.
// @Tags Pages
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param page body models.UpdatePageRequest true "Fields to change"
// @Success 200 {object} models.Page
// @Failure 404 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /pages/{id} [put]
func (h *PageHandler) UpdatePage(c *fiber.Ctx) error {
	var req models.UpdatePageRequest
	if err := bind(c, &req, true); err != nil {
		return err
	}

	page, err := h.pageService.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// DeletePage godoc
// @Summary Delete a landing page
// @Tags Pages
// @Produce json
// @Param id path string true "Page ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} map[string]interface{}
// @Router /pages/{id} [delete]
func (h *PageHandler) DeletePage(c *fiber.Ctx) error {
	if err := h.pageService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return message(c, "Landing page deleted successfully")
}

// AddComponent godoc
// @Summary Add a component to a page
// @Tags Components
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param component body models.Component true "Component"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /pages/{id}/components [post]
func (h *PageHandler) AddComponent(c *fiber.Ctx) error {
	var component models.Component
	if err := bind(c, &component, false); err != nil {
		return err
	}

	if _, err := h.pageService.AddComponent(c.UserContext(), c.Params("id"), component); err != nil {
		return err
	}
	return message(c, "Component added successfully")
}

// UpdateComponent godoc
// @Summary Replace a component
// @Description The component id from the path is kept regardless of the body.
// @Tags Components
// @Accept json
// @Produce json
// @Param id path string true "Page ID"
// @Param componentId path string true "Component ID"
// @Param component body models.Component true "Component"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} map[string]interface{}
// @Router /pages/{id}/components/{componentId} [put]
func (h *PageHandler) UpdateComponent(c *fiber.Ctx) error {
	componentID := c.Params("componentId")

	var component models.Component
	if err := c.BodyParser(&component); err != nil {
		return apperror.InvalidInput("Invalid request body", err)
	}
	component.ID = componentID
	if err := validation.Struct(&component); err != nil {
		return apperror.InvalidInput(err.Error(), err)
	}

	if _, err := h.pageService.UpdateComponent(c.UserContext(), c.Params("id"), componentID, component); err != nil {
		return err
	}
	return message(c, "Component updated successfully")
}

// DeleteComponent godoc
// @Summary Remove a component
// @Tags Components
// @Produce json
// @Param id path string true "Page ID"
// @Param componentId path string true "Component ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} map[string]interface{}
// @Router /pages/{id}/components/{componentId} [delete]
func (h *PageHandler) DeleteComponent(c *fiber.Ctx) error {
	if _, err := h.pageService.RemoveComponent(c.UserContext(), c.Params("id"), c.Params("componentId")); err != nil {
		return err
	}
	return message(c, "Component deleted successfully")
}
