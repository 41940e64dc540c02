package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/metrics"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/apperror"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/middleware"
)

const DefaultShutdownTimeout = 10 * time.Second

// Options configures the shared Fiber app
type Options struct {
	AppName     string
	CORSOrigins string
	// BodyLimit in bytes. Zero keeps Fiber's default.
	BodyLimit int
}

// HealthCheck reports whether a dependency can serve requests
type HealthCheck func(ctx context.Context) error

// New builds the Fiber app with the error handler and the middleware chain
// every route shares: metrics, request log, panic recovery, CORS.
func New(opts Options) *fiber.App {
	cfg := fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: apperror.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	}
	if opts.BodyLimit > 0 {
		cfg.BodyLimit = opts.BodyLimit
	}
	app := fiber.New(cfg)

	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(metrics.Middleware())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	app.Get("/metrics", metrics.Handler())
	return app
}

// Health mounts GET /health. Failing checks answer 503 with their errors.
func Health(app *fiber.App, checks map[string]HealthCheck) {
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		status := fiber.StatusOK
		results := fiber.Map{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = fiber.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		state := "ok"
		if status != fiber.StatusOK {
			state = "degraded"
		}
		return c.Status(status).JSON(fiber.Map{"status": state, "checks": results})
	})
}

// Run listens on addr until ctx is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then shuts the app down within timeout.
func Run(ctx context.Context, app *fiber.App, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := app.Listen(addr); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("🛑 Shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("🛑 Context cancelled, shutting down")
	}

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	log.Info().Msg("👋 HTTP server stopped gracefully")
	return nil
}
