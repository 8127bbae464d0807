package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gas-inventory-service/internal/models"
)

// Canonical column names, matched case- and whitespace-insensitively.
const (
	colRoom          = "room"
	colGasType       = "gas_type"
	colPSI           = "psi"
	colFull          = "full"
	colEmpty         = "empty"
	colDaysRemaining = "days_remaining"
	colLastUpdated   = "last_updated"
)

var requiredColumns = []string{colRoom, colGasType, colPSI}

// Accepted Last_Updated layouts. Excel renders styled date cells in the
// short forms; manual entry tends to be ISO.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	time.RFC3339,
}

// LoadResult is the outcome of parsing one uploaded workbook: the rows
// that validated, the rows that did not, and how many blank rows were
// silently skipped.
type LoadResult struct {
	Readings    []models.CylinderReading
	RowErrors   []models.RowError
	SkippedRows int
}

// Load parses raw workbook bytes into validated readings. The first
// worksheet is used. It returns *FormatError when the bytes are not a
// parseable workbook and *SchemaError when a required column is missing
// from the header row; per-row problems land in LoadResult.RowErrors and
// never abort the batch.
func Load(raw []byte) (*LoadResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FormatError{Err: errors.New("workbook has no worksheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Missing: append([]string(nil), requiredColumns...)}
	}

	columns, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			result.SkippedRows++
			continue
		}
		reading, err := parseRow(row, columns)
		if err != nil {
			result.RowErrors = append(result.RowErrors, models.RowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		result.Readings = append(result.Readings, reading)
	}
	return result, nil
}

// resolveColumns maps canonical column names to their position in the
// header row. Unrecognized columns are ignored; a missing required
// column fails the whole file.
func resolveColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var missing []string
	for _, req := range requiredColumns {
		if _, ok := columns[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (models.CylinderReading, error) {
	get := func(col string) string {
		if idx, ok := columns[col]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	room := get(colRoom)
	if room == "" {
		return models.CylinderReading{}, errors.New("missing room")
	}

	gasType := get(colGasType)
	if gasType == "" {
		return models.CylinderReading{}, errors.New("missing gas_type")
	}

	psiCell := get(colPSI)
	if psiCell == "" {
		return models.CylinderReading{}, errors.New("missing PSI")
	}
	psi, err := strconv.ParseFloat(psiCell, 64)
	if err != nil {
		return models.CylinderReading{}, fmt.Errorf("non-numeric PSI %q", psiCell)
	}
	if math.IsNaN(psi) || math.IsInf(psi, 0) {
		return models.CylinderReading{}, fmt.Errorf("non-finite PSI %q", psiCell)
	}

	return models.CylinderReading{
		Room:          room,
		GasType:       gasType,
		PSI:           psi,
		Full:          parseCount(get(colFull)),
		Empty:         parseCount(get(colEmpty)),
		DaysRemaining: parseDays(get(colDaysRemaining)),
		LastUpdated:   parseDate(get(colLastUpdated)),
	}, nil
}

// Optional cells coerce to nil when absent or unusable rather than
// failing the row; only the three required columns can reject a row.

func parseCount(cell string) *int {
	if cell == "" {
		return nil
	}
	n, err := strconv.Atoi(cell)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parseDays(cell string) *float64 {
	if cell == "" {
		return nil
	}
	d, err := strconv.ParseFloat(cell, 64)
	if err != nil || d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil
	}
	return &d
}

func parseDate(cell string) *time.Time {
	if cell == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, cell); err == nil {
			return &ts
		}
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
