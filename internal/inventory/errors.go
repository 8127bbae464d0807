package inventory

import (
	"fmt"
	"strings"
)

// FormatError means the uploaded bytes are not a parseable workbook.
// Fatal for the whole upload.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("could not read file: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// SchemaError means one or more required columns are absent from the
// header row. Fatal for the whole upload; no rows are processed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// InvariantViolation signals a programmer error: a reading that should
// have been rejected by the loader reached classification anyway.
type InvariantViolation struct {
	Room    string
	GasType string
	PSI     float64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: non-finite PSI %v reached classification (room=%s gas=%s)",
		e.PSI, e.Room, e.GasType)
}
