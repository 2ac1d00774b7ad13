package data

import (
	"fmt"
	"time"

	"windfarm-analytics/internal/model"
)

// Production sheet layout.
const (
	nameRow      = 0
	idRow        = 1
	firstDataRow = 3
)

// Normalize turns a raw production sheet into a timestamp-indexed table.
//
// Row 0 holds farm display names and row 1 farm identifiers, both offset by a
// leading label column; row 2 is unused and data starts at row 3 with the
// timestamp in column 0. Columns keep header order and rows keep source order.
// Unparseable timestamps drop the row; non-numeric values become Missing.
func Normalize(raw *model.RawTable, parser TimeParser) (*model.Table, error) {
	if raw == nil || len(raw.Rows) < firstDataRow+1 {
		n := 0
		path := ""
		if raw != nil {
			n, path = len(raw.Rows), raw.Path
		}
		return nil, model.Malformed(path, fmt.Sprintf("need at least %d rows, got %d", firstDataRow+1, n), nil)
	}
	names, ids := raw.Rows[nameRow], raw.Rows[idRow]
	if len(names) != len(ids) {
		return nil, model.Malformed(raw.Path, fmt.Sprintf("header rows disagree: %d names, %d identifiers", len(names), len(ids)), nil)
	}
	if len(ids) < 2 {
		return nil, model.Malformed(raw.Path, "no farm columns", nil)
	}

	farmIDs := ids[1:]
	id2name := make(map[string]string, len(farmIDs))
	for i, id := range farmIDs {
		id2name[id] = names[i+1]
	}

	width := len(farmIDs)
	out := &model.Table{
		Columns: make([]string, width),
		Index:   make([]time.Time, 0, len(raw.Rows)-firstDataRow),
		Values:  make([][]float64, 0, len(raw.Rows)-firstDataRow),
	}
	for j, id := range farmIDs {
		out.Columns[j] = id2name[id]
	}

	for _, cells := range raw.Rows[firstDataRow:] {
		var tsCell string
		if len(cells) > 0 {
			tsCell = cells[0]
		}
		ts, ok := parser.Parse(tsCell)
		if !ok {
			out.Dropped++
			continue
		}
		row := make([]float64, width)
		for j := range row {
			row[j] = model.Missing
			if j+1 < len(cells) {
				row[j] = ParseNumber(cells[j+1])
			}
		}
		out.Index = append(out.Index, ts)
		out.Values = append(out.Values, row)
	}
	return out, nil
}

// FilterYear keeps the rows whose timestamp falls in the given calendar year.
func FilterYear(t *model.Table, year int) *model.Table {
	out := &model.Table{
		Columns: append([]string(nil), t.Columns...),
		Index:   []time.Time{},
		Values:  [][]float64{},
	}
	for i, ts := range t.Index {
		if ts.Year() != year {
			continue
		}
		out.Index = append(out.Index, ts)
		out.Values = append(out.Values, append([]float64(nil), t.Values[i]...))
	}
	return out
}
