package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	API struct {
		Port     string
		BasePath string
	}
	Upload struct {
		MaxBytes int64
	}
	Logging struct {
		Dir        string
		Level      string
		MaxSizeMB  int
		MaxBackups int
	}
}

// Load reads environment variables, applies defaults, and returns a Config.
func Load() (Config, error) {
	// Load .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	// API settings
	cfg.API.Port = os.Getenv("API_PORT")
	cfg.API.BasePath = os.Getenv("API_BASE_PATH")

	// Upload limit
	if n, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_BYTES"), 10, 64); err == nil {
		cfg.Upload.MaxBytes = n
	}

	// Logging settings
	cfg.Logging.Dir = os.Getenv("LOG_DIR")
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if n, err := strconv.Atoi(os.Getenv("LOG_MAX_SIZE_MB")); err == nil {
		cfg.Logging.MaxSizeMB = n
	}
	if n, err := strconv.Atoi(os.Getenv("LOG_MAX_BACKUPS")); err == nil {
		cfg.Logging.MaxBackups = n
	}

	// Apply defaults
	if cfg.API.Port == "" {
		cfg.API.Port = ":8080"
	}
	if cfg.API.BasePath == "" {
		cfg.API.BasePath = "/api/v0"
	}
	if cfg.Upload.MaxBytes == 0 {
		// The size cap lives at the HTTP boundary, not in the engine.
		cfg.Upload.MaxBytes = 200 << 20
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = "logs"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 50
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 7
	}

	return cfg, nil
}
