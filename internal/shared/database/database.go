package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Postgres wraps the GORM handle used by the postgres store driver
type Postgres struct {
	GORM *gorm.DB
}

// NewPostgres opens and pings a postgres connection. Constraint violations
// are translated to gorm errors so repositories can match ErrDuplicatedKey.
func NewPostgres(connStr string, debug bool) (*Postgres, error) {
	if connStr == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	logMode := logger.Warn
	if debug {
		logMode = logger.Info
	}

	gormDB, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Msg("✅ Database connected (GORM)!")
	return &Postgres{GORM: gormDB}, nil
}

func (db *Postgres) Close() error {
	log.Info().Msg("🔌 Closing database connection...")
	sqlDB, err := db.GORM.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
