// Package inventory implements the ingestion-and-classification engine:
// workbook bytes in, classified inventory out. It holds no state across
// calls and is safe to invoke from concurrent requests.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"gas-inventory-service/internal/insights"
	"gas-inventory-service/internal/logging"
	"gas-inventory-service/internal/models"
)

// Engine composes the loader and classifier into one upload-scoped pass.
type Engine struct {
	logger *logging.Logger
}

// New constructs an Engine.
func New(logger *logging.Logger) *Engine {
	return &Engine{logger: logger}
}

// Process runs one full Loader-then-Classifier pass over raw workbook
// bytes. Whole-file problems (*FormatError, *SchemaError) abort before
// any rows are processed; row-level problems ride along in the result.
func (e *Engine) Process(raw []byte) (*models.ClassifiedInventory, error) {
	loaded, err := Load(raw)
	if err != nil {
		return nil, err
	}

	inv, err := Classify(loaded.Readings)
	if err != nil {
		return nil, err
	}

	inv.RowErrors = loaded.RowErrors
	insights.EstimateDaysRemaining(inv)
	inv.Summary = insights.Summarize(inv, loaded.SkippedRows)
	inv.ReportID = uuid.NewString()
	inv.GeneratedAt = time.Now().UTC()

	e.logger.Infof("Processed upload: %d critical, %d warning, %d stable, %d row errors, %d blank rows skipped",
		inv.Summary.CriticalCount, inv.Summary.WarningCount, inv.Summary.StableCount,
		len(inv.RowErrors), inv.Summary.SkippedRows)
	return inv, nil
}
