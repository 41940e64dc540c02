package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/email"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/core/upload"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/modules/builder/repositories"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/landing-builder-be/internal/shared/server"
)

// stores is the selected document store with its health check and cleanup
type stores struct {
	pages  repositories.PageRepo
	status repositories.StatusRepo
	check  server.HealthCheck
	close  func(ctx context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case "mongo":
		m, err := database.NewMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		if err := repositories.EnsureIndexes(ctx, m.DB); err != nil {
			_ = m.Close(ctx)
			return nil, err
		}
		return &stores{
			pages:  repositories.NewMongoPageRepo(m.DB),
			status: repositories.NewMongoStatusRepo(m.DB),
			check: func(ctx context.Context) error {
				return m.Client.Ping(ctx, readpref.Primary())
			},
			close: m.Close,
		}, nil

	case "postgres":
		pg, err := database.NewPostgres(cfg.DatabaseURL, !cfg.IsProduction())
		if err != nil {
			return nil, err
		}
		sqlDB, err := pg.GORM.DB()
		if err != nil {
			return nil, err
		}
		return &stores{
			pages:  repositories.NewPostgresPageRepo(pg.GORM),
			status: repositories.NewPostgresStatusRepo(pg.GORM),
			check:  sqlDB.PingContext,
			close:  func(context.Context) error { return pg.Close() },
		}, nil

	case "memory":
		log.Warn().Msg("⚠️  Using in-memory store, data is lost on restart")
		return &stores{
			pages:  repositories.NewMemoryPageRepo(),
			status: repositories.NewMemoryStatusRepo(),
			check:  func(context.Context) error { return nil },
			close:  func(context.Context) error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (use: mongo, postgres, memory)", cfg.StoreDriver)
	}
}

func newUploadProvider(ctx context.Context, cfg *config.Config) (upload.Provider, error) {
	switch cfg.UploadProvider {
	case "s3":
		return upload.NewS3Provider(ctx, upload.S3Config{
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
			Region:          cfg.AWSRegion,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
		})
	case "local":
		return upload.NewLocalProvider(cfg.UploadsDir)
	default:
		return nil, fmt.Errorf("unknown UPLOAD_PROVIDER %q (use: local, s3)", cfg.UploadProvider)
	}
}

// newEmailProvider falls back to the simulated provider when brevo is
// selected without an API key.
func newEmailProvider(cfg *config.Config) email.Provider {
	switch cfg.EmailProvider {
	case "brevo":
		if cfg.BrevoAPIKey != "" {
			return email.NewBrevoProvider(cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
		}
		log.Warn().Msg("⚠️  BREVO_API_KEY not set, emails will be simulated")
	case "simulated":
	default:
		log.Warn().Str("provider", cfg.EmailProvider).Msg("⚠️  Unknown EMAIL_PROVIDER, emails will be simulated")
	}
	return email.NewSimulatedProvider()
}
