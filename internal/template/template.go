// Package template renders the downloadable starter workbook users can
// fill in before their first upload.
package template

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the sample data lives on.
const SheetName = "Inventory"

// Header is the canonical column order of the starter workbook.
var Header = []interface{}{"Room", "Gas_Type", "PSI", "Full", "Empty", "Days_Remaining", "Last_Updated"}

var sampleRows = [][]interface{}{
	{"208", "Argon", 450, 2, 1, 4.5, "2024-11-14"},
	{"292", "Helium", 200, 0, 3, 2.0, "2024-11-14"},
	{"306", "Nitrogen", 1500, 3, 0, 15.0, "2024-11-14"},
	{"315", "Argon", 750, 1, 2, 7.5, "2024-11-14"},
	{"401", "Oxygen", 1200, 2, 1, 12.0, "2024-11-14"},
}

// SampleWorkbook builds the template workbook in memory and returns its
// serialized bytes.
func SampleWorkbook() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("template: rename sheet: %w", err)
	}

	rows := append([][]interface{}{Header}, sampleRows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("template: cell name for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("template: write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("template: serialize workbook: %w", err)
	}
	return buf, nil
}
