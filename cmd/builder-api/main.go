package main

import (
	"context"
	"time"

	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/email"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/publish"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/upload"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/handlers"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/services"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/server"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/landing-builder-be/cmd/builder-api/docs"
)

// @title ONEderpage Landing Page Builder API
// @version 1.0
// @description REST backend for composing, storing, exporting and publishing landing pages
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /api
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, !cfg.IsProduction())
	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("🚀 Starting builder-api")

	ctx := context.Background()

	// Init document store
	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to open store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("⚠️  Store close failed")
		}
	}()

	// Init blob store
	uploadProvider, err := newUploadProvider(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize upload provider")
	}
	uploadService := upload.NewService(uploadProvider, int64(cfg.MaxUploadMB)<<20)

	// Init email service
	mailer := email.NewService(newEmailProvider(cfg))

	log.Info().Msgf("📦 Using upload provider: %s", uploadService.GetProviderName())
	log.Info().Msgf("📧 Using email provider: %s", mailer.GetProviderName())

	// Init services
	exporter := export.NewService(cfg.FrontendURL)
	pageService := services.NewPageService(st.pages, services.SystemClock).WithBlobs(uploadService)
	statusService := services.NewStatusService(st.status, services.SystemClock)
	exportService := services.NewExportService(pageService, exporter, cfg.FrontendURL)
	publishService := services.NewPublishService(pageService, exporter, publish.NewFTPPublisher(nil, cfg.FTPTimeout))
	shareService := services.NewShareService(pageService, exporter, mailer, cfg.FrontendURL)

	// Init handlers
	h := &handlers.Handlers{
		Page:   handlers.NewPageHandler(pageService),
		Status: handlers.NewStatusHandler(statusService),
		Export: handlers.NewExportHandler(exportService, publishService, shareService),
		Upload: upload.NewHandler(uploadService),
	}

	// Init Fiber app
	app := server.New(server.Options{
		AppName:     "ONEderpage Landing Page Builder API",
		CORSOrigins: cfg.CORSOrigins,
		BodyLimit:   (cfg.MaxUploadMB + 1) << 20,
	})
	server.Health(app, map[string]server.HealthCheck{"store": st.check})

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	h.Register(app.Group("/api"))

	log.Info().Msgf("✅ builder-api running at :%s", cfg.Port)
	log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	if err := server.Run(ctx, app, ":"+cfg.Port, server.DefaultShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("❌ Server stopped")
	}
}
