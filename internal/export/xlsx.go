package export

import (
	"fmt"
	"io"
	"strings"

	"windfarm-analytics/internal/model"

	"github.com/xuri/excelize/v2"
)

// SummaryLine is one label/value pair on the summary sheet.
type SummaryLine struct {
	Label string
	Value any
}

// WriteXLSX writes t to a workbook with the data on sheet and, when summary is
// non-empty, a "Summary" sheet placed first. Any cell that cannot be written
// fails the whole export.
func WriteXLSX(w io.Writer, sheet string, t *model.Table, summary []SummaryLine) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Data"
	}
	const summarySheet = "Summary"

	if len(summary) > 0 {
		// Sheet names are case-insensitive; sharing one would overwrite the summary.
		if strings.EqualFold(sheet, summarySheet) {
			return fmt.Errorf("data sheet %q clashes with the summary sheet", sheet)
		}
		if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
			return err
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		for i, line := range summary {
			row := i + 1
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.Label); err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), summaryValue(line.Value)); err != nil {
				return err
			}
		}
	} else if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := append([]string{"timestamp"}, t.Columns...)
	for col, name := range header {
		if err := setCell(f, sheet, col+1, 1, name); err != nil {
			return err
		}
	}
	for i, ts := range t.Index {
		row := i + 2
		if err := setCell(f, sheet, 1, row, fmtTime(ts)); err != nil {
			return err
		}
		for j, v := range t.Values[i] {
			if model.IsMissing(v) {
				continue
			}
			if err := setCell(f, sheet, j+2, row, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// summaryValue renders undefined metrics as empty cells.
func summaryValue(v any) any {
	switch x := v.(type) {
	case *float64:
		if x == nil {
			return ""
		}
		return *x
	case float64:
		if model.IsMissing(x) {
			return ""
		}
	}
	return v
}
