package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the fiber.Config ErrorHandler. Every failure is answered as
// {"detail": "..."} with the matching status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := As(err); ok {
		status := appErr.Status()
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("❌ request failed")
		}
		return c.Status(status).JSON(fiber.Map{"detail": appErr.Reason})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("❌ unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
}
