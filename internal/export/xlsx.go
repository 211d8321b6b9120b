// Package export writes report tables to spreadsheet files.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ibstat/cli/internal/reports"
)

const maxSheetName = 31

// WriteXLSX writes columns and rows as one sheet named after the report
// token. Cells that hold a statement amount are written as numbers.
func WriteXLSX(path, token string, columns []string, rows []reports.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := SheetName(token)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		values := make([]any, len(columns))
		for j, c := range columns {
			values[j] = cellValue(row[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SheetName turns a category token into a valid worksheet name.
func SheetName(token string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(token))

	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	if name == "" {
		name = "Report"
	}
	return name
}

func cellValue(s string) any {
	if strings.TrimSpace(s) == "" || !looksNumeric(s) {
		return s
	}
	v, err := reports.ParseAmount(s)
	if err != nil {
		return s
	}
	return v
}

func looksNumeric(s string) bool {
	for _, r := range strings.TrimSpace(s) {
		if (r < '0' || r > '9') && r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return true
}
