package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"windfarm-analytics/internal/model"
)

// WriteCSV writes t with a timestamp column followed by one column per
// table column. Missing values become empty cells.
func WriteCSV(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{"timestamp"}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, ts := range t.Index {
		row := make([]string, 0, len(t.Columns)+1)
		row = append(row, fmtTime(ts))
		for _, v := range t.Values[i] {
			row = append(row, fmtFloat(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes t to path, creating or truncating it.
func WriteCSVFile(path string, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return err
	}
	return f.Close()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	if model.IsMissing(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
