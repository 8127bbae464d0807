package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gas-inventory-service/internal/api"
	"gas-inventory-service/internal/config"
	"gas-inventory-service/internal/logging"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config load failed:", err)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	if err != nil {
		log.Fatal("Logger init failed:", err)
	}
	defer logger.Close()

	// Start API server
	r := api.NewRouter(logger, cfg)
	srv := &http.Server{
		Addr:    cfg.API.Port,
		Handler: r,
	}

	go func() {
		logger.Infof("API started on %s", cfg.API.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("API run failed: %v", err)
		}
	}()

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logger.Infof("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
	logger.Infof("Service stopped")
}
