// Package insights derives the dashboard's supporting numbers from one
// classified upload: days-remaining estimates, stockout cost, and the
// reorder action plan. Everything here is snapshot-scoped; nothing is
// retained between uploads.
package insights

import (
	"math"
	"time"

	"github.com/google/uuid"

	"gas-inventory-service/internal/models"
)

const (
	// Fallback consumption rate when Days_Remaining is not reported:
	// roughly 100 PSI per day of bench use.
	psiPerDay = 100

	// Severity costs of an unhandled critical cylinder: a full stockout
	// interrupts research, a near-stockout forces an emergency order.
	severeStockoutPSI  = 300
	severeStockoutCost = 1000
	stockoutCost       = 500
)

// EstimateDaysRemaining fills in Days_Remaining for readings whose
// spreadsheet cell was absent, estimating from current pressure.
// Reported values are never overwritten.
func EstimateDaysRemaining(inv *models.ClassifiedInventory) {
	for _, tier := range [][]models.CylinderReading{inv.Critical, inv.Warning, inv.Stable} {
		for i := range tier {
			if tier[i].DaysRemaining == nil {
				est := round1(tier[i].PSI / psiPerDay)
				tier[i].DaysRemaining = &est
			}
		}
	}
}

// Summarize computes the per-tier counts and the estimated cost of
// leaving every critical cylinder unordered.
func Summarize(inv *models.ClassifiedInventory, skippedRows int) models.Summary {
	s := models.Summary{
		CriticalCount: len(inv.Critical),
		WarningCount:  len(inv.Warning),
		StableCount:   len(inv.Stable),
		SkippedRows:   skippedRows,
	}
	for _, r := range inv.Critical {
		if r.PSI < severeStockoutPSI {
			s.EstimatedStockoutCost += severeStockoutCost
		} else {
			s.EstimatedStockoutCost += stockoutCost
		}
	}
	return s
}

// BuildActionPlan turns a classified inventory into the reorder list:
// critical rooms order now, warning rooms order this week. Tiers are
// already sorted most urgent first, and the plan keeps that order.
func BuildActionPlan(inv *models.ClassifiedInventory) *models.ActionPlan {
	plan := &models.ActionPlan{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, r := range inv.Critical {
		plan.Items = append(plan.Items, actionItem(r, models.ActionOrderNow))
	}
	for _, r := range inv.Warning {
		plan.Items = append(plan.Items, actionItem(r, models.ActionOrderThisWeek))
	}
	return plan
}

func actionItem(r models.CylinderReading, action string) models.ActionItem {
	return models.ActionItem{
		Room:          r.Room,
		GasType:       r.GasType,
		PSI:           r.PSI,
		DaysRemaining: r.DaysRemaining,
		Action:        action,
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
