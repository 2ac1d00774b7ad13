package model

import (
	"math"
	"time"
)

// Missing marks an absent or non-numeric cell.
var Missing = math.NaN()

// IsMissing reports whether v is the missing marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// RawTable is an untyped grid of cells exactly as read from a source file.
// Rows may have different lengths; trailing empty cells are not guaranteed.
type RawTable struct {
	Path string
	Rows [][]string
}

// Cell returns the cell at (row, col) or "" when out of range.
func (r *RawTable) Cell(row, col int) string {
	if r == nil || row < 0 || row >= len(r.Rows) {
		return ""
	}
	cells := r.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// Table is a timestamp-indexed numeric table with one column per farm.
// Values is row-major: Values[i][j] is column j at Index[i].
//
// Tables are shared through the memo cache and must be treated as read-only;
// every transformation returns a new Table.
type Table struct {
	Columns []string
	Index   []time.Time
	Values  [][]float64

	// Dropped counts source rows excluded because the timestamp did not parse.
	Dropped int
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Index)
}

// ColumnIndex returns the position of the first column named name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Series extracts a single farm column.
func (t *Table) Series(name string) (Series, error) {
	col, ok := t.ColumnIndex(name)
	if !ok {
		return Series{}, UnknownFarm(name)
	}
	s := Series{
		Name:   name,
		Index:  append([]time.Time(nil), t.Index...),
		Values: make([]float64, len(t.Index)),
	}
	for i, row := range t.Values {
		s.Values[i] = row[col]
	}
	return s, nil
}

// Span returns the first and last timestamps by value.
func (t *Table) Span() (first, last time.Time, ok bool) {
	for i, ts := range t.Index {
		if i == 0 || ts.Before(first) {
			first = ts
		}
		if i == 0 || ts.After(last) {
			last = ts
		}
	}
	return first, last, t.Len() > 0
}

// Series is a single named, timestamp-indexed column.
type Series struct {
	Name   string
	Index  []time.Time
	Values []float64
}
