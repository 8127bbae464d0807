package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.Port != ":8080" {
		t.Errorf("API.Port: got %q, want :8080", cfg.API.Port)
	}
	if cfg.API.BasePath != "/api/v0" {
		t.Errorf("API.BasePath: got %q, want /api/v0", cfg.API.BasePath)
	}
	if cfg.Upload.MaxBytes != 200<<20 {
		t.Errorf("Upload.MaxBytes: got %d, want %d", cfg.Upload.MaxBytes, 200<<20)
	}
	if cfg.Logging.Dir != "logs" || cfg.Logging.Level != "info" {
		t.Errorf("Logging defaults: got %+v", cfg.Logging)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", ":9191")
	t.Setenv("API_BASE_PATH", "/api/v1")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MAX_BACKUPS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.Port != ":9191" {
		t.Errorf("API.Port: got %q, want :9191", cfg.API.Port)
	}
	if cfg.API.BasePath != "/api/v1" {
		t.Errorf("API.BasePath: got %q, want /api/v1", cfg.API.BasePath)
	}
	if cfg.Upload.MaxBytes != 1048576 {
		t.Errorf("Upload.MaxBytes: got %d, want 1048576", cfg.Upload.MaxBytes)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups: got %d, want 3", cfg.Logging.MaxBackups)
	}
}
