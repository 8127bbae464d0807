package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gas-inventory-service/internal/config"
	"gas-inventory-service/internal/inventory"
	"gas-inventory-service/internal/logging"
)

// NewRouter wires the upload/render boundary around the classification
// engine.
func NewRouter(logger *logging.Logger, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLoggingMiddleware(logger))

	h := &Handler{
		engine: inventory.New(logger),
		logger: logger,
		config: cfg,
	}

	base := r.Group(cfg.API.BasePath)
	{
		base.POST("/inventory", h.UploadInventory)
		base.GET("/template", h.DownloadTemplate)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
