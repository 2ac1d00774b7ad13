package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"windfarm-analytics/internal/model"

	"github.com/xuri/excelize/v2"
)

// LoadRaw reads a spreadsheet into an untyped grid with no header
// interpretation. For workbooks the named sheet is used, or the first sheet
// when sheet is empty. CSV files ignore sheet.
func LoadRaw(path, sheet string) (*model.RawTable, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, model.Unavailable(path, err)
	}
	if info.IsDir() {
		return nil, model.Unavailable(path, errors.New("is a directory"))
	}

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		rows, err = readWorkbook(path, sheet)
	case ".csv", ".txt":
		rows, err = readCSV(path)
	default:
		return nil, model.Malformed(path, fmt.Sprintf("unsupported file type %q", ext), nil)
	}
	if err != nil {
		return nil, err
	}
	return &model.RawTable{Path: path, Rows: rows}, nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return nil, model.Unavailable(path, err)
		}
		return nil, model.Malformed(path, "not a readable workbook", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, model.Malformed(path, "workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}
	// Raw values keep numbers unformatted and dates as serial day numbers.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, model.Malformed(path, fmt.Sprintf("cannot read sheet %q", sheet), err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, model.Unavailable(path, err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.Malformed(path, "not valid delimited text", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
