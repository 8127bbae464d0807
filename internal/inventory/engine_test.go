package inventory

import (
	"testing"

	"gas-inventory-service/internal/logging"
)

func newTestEngine() *Engine {
	return New(logging.Discard())
}

// The worked example: three good rows land one per tier, the bad row is
// reported and excluded.
func TestEngineEndToEnd(t *testing.T) {
	raw := buildWorkbook(t, [][]interface{}{
		{"Room", "Gas_Type", "PSI"},
		{"208", "Argon", 450},
		{"210", "Helium", 750},
		{"212", "Nitrogen", 1500},
		{"214", "Argon", "bad"},
	})

	inv, err := newTestEngine().Process(raw)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if len(inv.Critical) != 1 || inv.Critical[0].Room != "208" || inv.Critical[0].PSI != 450 {
		t.Errorf("Critical: got %+v", inv.Critical)
	}
	if len(inv.Warning) != 1 || inv.Warning[0].Room != "210" || inv.Warning[0].PSI != 750 {
		t.Errorf("Warning: got %+v", inv.Warning)
	}
	if len(inv.Stable) != 1 || inv.Stable[0].Room != "212" || inv.Stable[0].PSI != 1500 {
		t.Errorf("Stable: got %+v", inv.Stable)
	}
	if len(inv.RowErrors) != 1 || inv.RowErrors[0].Row != 4 {
		t.Fatalf("RowErrors: got %+v, want one error on row 4", inv.RowErrors)
	}
	if inv.RowErrors[0].Reason != `non-numeric PSI "bad"` {
		t.Errorf("RowErrors reason: got %q", inv.RowErrors[0].Reason)
	}

	if inv.Summary.CriticalCount != 1 || inv.Summary.WarningCount != 1 || inv.Summary.StableCount != 1 {
		t.Errorf("Summary counts: got %+v", inv.Summary)
	}
	if inv.ReportID == "" {
		t.Error("ReportID should be set")
	}
	if inv.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}

func TestEngineBoundaryValues(t *testing.T) {
	raw := buildWorkbook(t, [][]interface{}{
		{"Room", "Gas_Type", "PSI"},
		{"A", "Argon", 499},
		{"B", "Argon", 500},
		{"C", "Argon", 1000},
		{"D", "Argon", 1001},
	})

	inv, err := newTestEngine().Process(raw)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if len(inv.Critical) != 1 || inv.Critical[0].Room != "A" {
		t.Errorf("Critical: got %+v, want only room A (499)", inv.Critical)
	}
	if len(inv.Warning) != 2 || inv.Warning[0].Room != "B" || inv.Warning[1].Room != "C" {
		t.Errorf("Warning: got %+v, want rooms B (500) and C (1000)", inv.Warning)
	}
	if len(inv.Stable) != 1 || inv.Stable[0].Room != "D" {
		t.Errorf("Stable: got %+v, want only room D (1001)", inv.Stable)
	}
}

// N valid rows classify regardless of how many malformed rows surround
// them.
func TestEnginePartialFailureIndependence(t *testing.T) {
	raw := buildWorkbook(t, [][]interface{}{
		{"Room", "Gas_Type", "PSI"},
		{"101", "Argon", 300},
		{"", "Helium", 700},
		{"103", "Nitrogen", "x"},
		{"104", "Oxygen", 900},
		{"105", "Argon", "?"},
		{"106", "Helium", 1200},
	})

	inv, err := newTestEngine().Process(raw)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	classified := len(inv.Critical) + len(inv.Warning) + len(inv.Stable)
	if classified != 3 {
		t.Errorf("classified: got %d, want 3", classified)
	}
	if len(inv.RowErrors) != 3 {
		t.Errorf("row errors: got %d, want 3", len(inv.RowErrors))
	}
}

func TestEngineSchemaErrorYieldsNothing(t *testing.T) {
	raw := buildWorkbook(t, [][]interface{}{
		{"Room", "Gas_Type"},
		{"208", "Argon"},
		{"210", "Helium"},
		{"212", "Nitrogen"},
	})

	inv, err := newTestEngine().Process(raw)
	if err == nil {
		t.Fatalf("expected schema error, got result %+v", inv)
	}
	if inv != nil {
		t.Errorf("no partial result allowed on schema error")
	}
}

func TestEngineFillsDaysRemaining(t *testing.T) {
	raw := buildWorkbook(t, [][]interface{}{
		{"Room", "Gas_Type", "PSI", "Days_Remaining"},
		{"208", "Argon", 450, ""},
		{"210", "Helium", 750, 3.5},
	})

	inv, err := newTestEngine().Process(raw)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	crit := inv.Critical[0]
	if crit.DaysRemaining == nil || *crit.DaysRemaining != 4.5 {
		t.Errorf("estimated DaysRemaining: got %v, want 4.5", crit.DaysRemaining)
	}
	warn := inv.Warning[0]
	if warn.DaysRemaining == nil || *warn.DaysRemaining != 3.5 {
		t.Errorf("reported DaysRemaining must be preserved: got %v", warn.DaysRemaining)
	}
}
