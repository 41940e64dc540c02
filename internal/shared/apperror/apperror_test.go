package apperror

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("Landing page not found"), fiber.StatusNotFound},
		{BadRequest("File must be an image"), fiber.StatusBadRequest},
		{InvalidInput("title is required", nil), fiber.StatusUnprocessableEntity},
		{Conflict("Component already exists"), fiber.StatusConflict},
		{External("FTP upload failed", errors.New("timeout")), fiber.StatusInternalServerError},
		{Internal("boom", nil), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.err.Status(), tc.err.Code)
	}
}

func TestExternalEchoesUnderlyingMessage(t *testing.T) {
	err := External("FTP upload failed", errors.New("530 Login incorrect"))
	require.Equal(t, "FTP upload failed: 530 Login incorrect", err.Reason)
}

func TestAsUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound("File not found"))
	appErr, ok := As(wrapped)
	require.True(t, ok)
	require.Equal(t, CodeNotFound, appErr.Code)

	_, ok = As(errors.New("plain"))
	require.False(t, ok)
}

func TestErrorHandlerWritesDetail(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("Landing page not found") })
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("kaboom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.JSONEq(t, `{"detail":"Landing page not found"}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
