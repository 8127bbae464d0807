package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"gas-inventory-service/internal/config"
	"gas-inventory-service/internal/insights"
	"gas-inventory-service/internal/inventory"
	"gas-inventory-service/internal/logging"
	"gas-inventory-service/internal/models"
	"gas-inventory-service/internal/template"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	engine *inventory.Engine
	logger *logging.Logger
	config config.Config
}

// UploadResponse is the body returned for a successful upload.
type UploadResponse struct {
	Inventory  *models.ClassifiedInventory `json:"inventory"`
	ActionPlan *models.ActionPlan          `json:"action_plan"`
}

// UploadInventory accepts a spreadsheet in the multipart "file" field,
// runs the classification engine over it, and returns the grouped
// result. Each upload fully replaces the caller's prior view; nothing
// is retained server-side.
func (h *Handler) UploadInventory(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Errorf("Upload rejected, no file field: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field \"file\""})
		return
	}
	if fileHeader.Size > h.config.Upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "uploaded file exceeds size limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorf("Upload open failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, h.config.Upload.MaxBytes+1))
	if err != nil {
		h.logger.Errorf("Upload read failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	if int64(len(raw)) > h.config.Upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "uploaded file exceeds size limit"})
		return
	}

	inv, err := h.engine.Process(raw)
	if err != nil {
		h.renderEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Inventory:  inv,
		ActionPlan: insights.BuildActionPlan(inv),
	})
}

func (h *Handler) renderEngineError(c *gin.Context, err error) {
	var schemaErr *inventory.SchemaError
	var formatErr *inventory.FormatError
	var violation *inventory.InvariantViolation

	switch {
	case errors.As(err, &schemaErr):
		h.logger.Warnf("Upload rejected, schema error: %v", schemaErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":           "missing required columns",
			"missing_columns": schemaErr.Missing,
		})
	case errors.As(err, &formatErr):
		h.logger.Warnf("Upload rejected, format error: %v", formatErr)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
	case errors.As(err, &violation):
		h.logger.Errorf("Classification invariant violated: %v", violation)
		c.JSON(http.StatusInternalServerError, gin.H{"error": violation.Error()})
	default:
		h.logger.Errorf("Upload processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// DownloadTemplate serves the starter workbook with the expected columns
// and a few sample rows.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	buf, err := template.SampleWorkbook()
	if err != nil {
		h.logger.Errorf("Template generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate template"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="Gas_Inventory_Template.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
