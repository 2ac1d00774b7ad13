package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"windfarm-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a single-sheet workbook. Numeric-looking
// strings are stored as numbers, like a real export.
func writeWorkbook(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	} else {
		sheet = "Sheet1"
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()

	t.Run("Workbook first sheet", func(t *testing.T) {
		path := filepath.Join(dir, "prod.xlsx")
		writeWorkbook(t, path, "Produksjon", [][]any{
			{"", "Høg-Jæren", "Bjerkreim"},
			{"", "HOG", "BJE"},
			{"Tid", "MWh", "MWh"},
			{"2024-01-01 00:00:00", 10.5, 3},
		})

		raw, err := LoadRaw(path, "")
		require.NoError(t, err)
		require.Len(t, raw.Rows, 4)
		assert.Equal(t, "Høg-Jæren", raw.Cell(0, 1))
		assert.Equal(t, "10.5", raw.Cell(3, 1))

		table, err := Normalize(raw, utcParser())
		require.NoError(t, err)
		assert.Equal(t, []string{"Høg-Jæren", "Bjerkreim"}, table.Columns)
		assert.Equal(t, []float64{10.5, 3}, table.Values[0])
	})

	t.Run("Workbook date cells", func(t *testing.T) {
		path := filepath.Join(dir, "dates.xlsx")
		writeWorkbook(t, path, "", [][]any{
			{"Time", "Price"},
			{time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), 55.2},
		})

		prices, err := LoadPrices(path, "", utcParser())
		require.NoError(t, err)
		require.Equal(t, 1, prices.Len())
		assert.Equal(t, time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), prices.Index[0])
		assert.Equal(t, 55.2, prices.Price[0])
	})

	t.Run("Workbook without label row and blank first price", func(t *testing.T) {
		path := filepath.Join(dir, "headerless.xlsx")
		writeWorkbook(t, path, "", [][]any{
			{"2024-01-01 00:00"},
			{"2024-01-01 01:00", 42.5},
		})

		raw, err := LoadRaw(path, "")
		require.NoError(t, err)
		assert.Len(t, raw.Rows[0], 1)

		prices, err := LoadPrices(path, "", utcParser())
		require.NoError(t, err)
		require.Equal(t, 2, prices.Len())
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), prices.Index[0])
		assert.True(t, model.IsMissing(prices.Price[0]))
		assert.Equal(t, 42.5, prices.Price[1])
	})

	t.Run("Named sheet missing", func(t *testing.T) {
		path := filepath.Join(dir, "named.xlsx")
		writeWorkbook(t, path, "Data", [][]any{{"a"}})
		_, err := LoadRaw(path, "Other")
		assert.True(t, errors.Is(err, model.ErrMalformedSource))
	})

	t.Run("CSV with ragged rows", func(t *testing.T) {
		path := filepath.Join(dir, "prod.csv")
		require.NoError(t, os.WriteFile(path, []byte(",A,B\n,a,b\n\n2024-01-01,1\n"), 0o644))
		raw, err := LoadRaw(path, "ignored")
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"", "A", "B"}, {"", "a", "b"}, {"2024-01-01", "1"}}, raw.Rows)
		assert.Equal(t, "", raw.Cell(2, 5))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadRaw(filepath.Join(dir, "nope.xlsx"), "")
		assert.True(t, errors.Is(err, model.ErrSourceUnavailable))
		assert.True(t, errors.Is(err, os.ErrNotExist))

		var srcErr *model.SourceError
		require.True(t, errors.As(err, &srcErr))
		assert.Equal(t, filepath.Join(dir, "nope.xlsx"), srcErr.Path)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := LoadRaw(dir, "")
		assert.True(t, errors.Is(err, model.ErrSourceUnavailable))
	})

	t.Run("Not a workbook", func(t *testing.T) {
		path := filepath.Join(dir, "broken.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
		_, err := LoadRaw(path, "")
		assert.True(t, errors.Is(err, model.ErrMalformedSource))
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "data.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		_, err := LoadRaw(path, "")
		assert.True(t, errors.Is(err, model.ErrMalformedSource))
	})
}
