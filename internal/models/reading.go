package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AlertTier is the three-way urgency classification derived from pressure.
type AlertTier int

const (
	TierCritical AlertTier = iota
	TierWarning
	TierStable
)

func (t AlertTier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierWarning:
		return "warning"
	case TierStable:
		return "stable"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// MarshalJSON serializes the tier as its string form.
func (t AlertTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// CylinderReading is one validated spreadsheet row: a single
// cylinder/room/gas combination. Optional columns stay nil when the
// cell is absent or unusable.
type CylinderReading struct {
	Room          string     `json:"room"`
	GasType       string     `json:"gas_type"`
	PSI           float64    `json:"psi"`
	Full          *int       `json:"full,omitempty"`
	Empty         *int       `json:"empty,omitempty"`
	DaysRemaining *float64   `json:"days_remaining,omitempty"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}

// RowError reports one malformed data row. Row is the 1-based position
// among data rows (the header row is not counted).
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}
