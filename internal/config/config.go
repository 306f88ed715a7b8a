package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port string
	Env  string

	// Storage backend: "memory", "file", "sqlite", "postgres" or "redis".
	StorageDriver string
	DatabaseURL   string
	RedisURL      string
	SQLitePath    string
	DataDir       string // file backend collection directory

	// Upload gateway
	UploadDir     string
	PublicBaseURL string // prefix for returned image URLs
	MaxUploadMB   int64

	// Admin gate: plain code compared in constant time, or a bcrypt hash.
	AdminCode     string
	AdminCodeHash string
}

// Load reads configuration from environment variables.
// In development, it loads from .env file if present.
// In production, it panics on missing required variables.
func Load() *Config {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		DataDir:       os.Getenv("DATA_DIR"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 20),
		AdminCode:     os.Getenv("ADMIN_CODE"),
		AdminCodeHash: os.Getenv("ADMIN_CODE_HASH"),
	}

	// In production, the configured backend and the admin gate must be set
	// explicitly.
	if cfg.Env == "production" {
		if cfg.StorageDriver == "postgres" && cfg.DatabaseURL == "" {
			panic("DATABASE_URL is required with STORAGE_DRIVER=postgres")
		}
		if cfg.StorageDriver == "redis" && cfg.RedisURL == "" {
			panic("REDIS_URL is required with STORAGE_DRIVER=redis")
		}
		if cfg.AdminCode == "" && cfg.AdminCodeHash == "" {
			panic("ADMIN_CODE or ADMIN_CODE_HASH is required in production")
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// MaxUploadBytes returns the upload body limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
