package inventory

import (
	"math"
	"sort"

	"gas-inventory-service/internal/models"
)

// Pressure threshold policy. Both boundaries belong to Warning.
const (
	criticalBelowPSI  = 500
	warningCeilingPSI = 1000
)

// TierFor returns the alert tier for a pressure value. Pure function of
// PSI; no other field participates.
func TierFor(psi float64) models.AlertTier {
	switch {
	case psi < criticalBelowPSI:
		return models.TierCritical
	case psi <= warningCeilingPSI:
		return models.TierWarning
	default:
		return models.TierStable
	}
}

// Classify groups validated readings into the three alert tiers. Within
// each tier readings are ordered ascending by PSI, ties broken by room
// name, so the most urgent cylinders surface first. A non-finite PSI
// here means the loader's validation was bypassed and returns
// *InvariantViolation.
func Classify(readings []models.CylinderReading) (*models.ClassifiedInventory, error) {
	inv := &models.ClassifiedInventory{}
	for _, r := range readings {
		if math.IsNaN(r.PSI) || math.IsInf(r.PSI, 0) {
			return nil, &InvariantViolation{Room: r.Room, GasType: r.GasType, PSI: r.PSI}
		}
		switch TierFor(r.PSI) {
		case models.TierCritical:
			inv.Critical = append(inv.Critical, r)
		case models.TierWarning:
			inv.Warning = append(inv.Warning, r)
		default:
			inv.Stable = append(inv.Stable, r)
		}
	}

	sortTier(inv.Critical)
	sortTier(inv.Warning)
	sortTier(inv.Stable)
	return inv, nil
}

func sortTier(readings []models.CylinderReading) {
	sort.SliceStable(readings, func(i, j int) bool {
		if readings[i].PSI != readings[j].PSI {
			return readings[i].PSI < readings[j].PSI
		}
		return readings[i].Room < readings[j].Room
	})
}
