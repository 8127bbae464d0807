package models

import "time"

// Reorder actions, most urgent first.
const (
	ActionOrderNow      = "order_now"
	ActionOrderThisWeek = "order_this_week"
)

// ActionItem is one reorder recommendation for a room.
type ActionItem struct {
	Room          string   `json:"room"`
	GasType       string   `json:"gas_type"`
	PSI           float64  `json:"psi"`
	DaysRemaining *float64 `json:"days_remaining,omitempty"`
	Action        string   `json:"action"`
}

// ActionPlan is the ordered reorder list derived from one classified
// upload. Items appear most urgent first.
type ActionPlan struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Items       []ActionItem `json:"items"`
}
