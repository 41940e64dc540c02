package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Document store
	StoreDriver string // mongo, postgres, memory
	MongoURL    string
	DBName      string
	DatabaseURL string

	// Blob store
	UploadProvider  string // local, s3
	UploadsDir      string
	MaxUploadMB     int
	AWSRegion       string
	AWSAccessKeyID  string
	AWSSecretKey    string
	S3Bucket        string
	S3Prefix        string

	// Export / embed
	FrontendURL string

	// Email
	EmailProvider string // simulated, brevo
	BrevoAPIKey   string
	EmailFrom     string
	EmailFromName string

	FTPTimeout  time.Duration
	CORSOrigins string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		StoreDriver:    strings.ToLower(os.Getenv("STORE_DRIVER")),
		MongoURL:       os.Getenv("MONGO_URL"),
		DBName:         os.Getenv("DB_NAME"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		UploadProvider: strings.ToLower(os.Getenv("UPLOAD_PROVIDER")),
		UploadsDir:     os.Getenv("UPLOADS_DIR"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Prefix:       os.Getenv("S3_PREFIX"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		EmailProvider:  strings.ToLower(os.Getenv("EMAIL_PROVIDER")),
		BrevoAPIKey:    os.Getenv("BREVO_API_KEY"),
		EmailFrom:      os.Getenv("EMAIL_FROM"),
		EmailFromName:  os.Getenv("EMAIL_FROM_NAME"),
		CORSOrigins:    os.Getenv("CORS_ORIGINS"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = "mongo"
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "landing_builder"
	}
	if cfg.UploadProvider == "" {
		cfg.UploadProvider = "local"
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "simulated"
	}
	if cfg.EmailFromName == "" {
		cfg.EmailFromName = "ONEderpage"
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}

	cfg.MaxUploadMB = intEnv("MAX_UPLOAD_MB", 10)
	cfg.FTPTimeout = durationEnv("FTP_TIMEOUT", 30*time.Second)

	return cfg
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("⚠️ invalid integer, using default")
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("⚠️ invalid duration, using default")
		return def
	}
	return v
}
