package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/models"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/services"
)

const banner = "ONEderpage Landing Page Builder API"

type StatusHandler struct {
	statusService *services.StatusService
}

func NewStatusHandler(statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// Root godoc
// @Summary API banner
// @Tags Status
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router / [get]
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return message(c, banner)
}

// CreateStatusCheck godoc
// @Summary Record a status check
// @Tags Status
// @Accept json
// @Produce json
// @Param check body models.CreateStatusCheckRequest true "Client name"
// @Success 200 {object} models.StatusCheck
// @Failure 422 {object} map[string]interface{}
// @Router /status [post]
func (h *StatusHandler) CreateStatusCheck(c *fiber.Ctx) error {
	var req models.CreateStatusCheckRequest
	if err := bind(c, &req, false); err != nil {
		return err
	}

	check, err := h.statusService.Record(c.UserContext(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(check)
}

// ListStatusChecks godoc
// @Summary List status checks
// @Tags Status
// @Produce json
// @Success 200 {array} models.StatusCheck
// @Router /status [get]
func (h *StatusHandler) ListStatusChecks(c *fiber.Ctx) error {
	checks, err := h.statusService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(checks)
}

// RoyaltyFreeSounds godoc
// @Summary Royalty-free sound catalog
// @Tags Media
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /royalty-free-sounds [get]
func (h *StatusHandler) RoyaltyFreeSounds(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sounds": models.RoyaltyFreeSounds()})
}
