package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/validation"
)

// bind decodes the JSON body into dst and validates it. An empty body is
// accepted when optional is set.
func bind(c *fiber.Ctx, dst any, optional bool) error {
	if len(c.Body()) == 0 {
		if !optional {
			return apperror.InvalidInput("Request body is required", nil)
		}
	} else if err := c.BodyParser(dst); err != nil {
		return apperror.InvalidInput("Invalid request body", err)
	}

	if err := validation.Struct(dst); err != nil {
		return apperror.InvalidInput(err.Error(), err)
	}
	return nil
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"message": msg})
}
