package models

import "time"

// Summary holds the per-tier counts shown at the top of the dashboard,
// plus the estimated cost of unhandled critical cylinders.
type Summary struct {
	CriticalCount         int     `json:"critical_count"`
	WarningCount          int     `json:"warning_count"`
	StableCount           int     `json:"stable_count"`
	SkippedRows           int     `json:"skipped_rows"`
	EstimatedStockoutCost float64 `json:"estimated_stockout_cost"`
}

// ClassifiedInventory is the full result of one upload: the three alert
// groups ordered most-urgent-first, the rows that failed validation, and
// report metadata. It is built fresh per upload and never retained.
type ClassifiedInventory struct {
	Critical    []CylinderReading `json:"critical"`
	Warning     []CylinderReading `json:"warning"`
	Stable      []CylinderReading `json:"stable"`
	RowErrors   []RowError        `json:"row_errors,omitempty"`
	Summary     Summary           `json:"summary"`
	ReportID    string            `json:"report_id"`
	GeneratedAt time.Time         `json:"generated_at"`
}
