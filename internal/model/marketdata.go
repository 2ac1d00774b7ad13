package model

import "time"

// PriceTable is the day-ahead spot price series, one row per delivery hour.
// Prices are in currency/MWh; a non-numeric source cell is Missing.
type PriceTable struct {
	Path  string
	Index []time.Time
	Price []float64

	// Dropped counts source rows excluded because the timestamp did not parse.
	Dropped int
}

func (p *PriceTable) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Index)
}

// EarningsRow is one hour where both production and price are known.
type EarningsRow struct {
	Timestamp  time.Time
	Production float64 // MWh
	Price      float64 // currency/MWh
	Earnings   float64 // Production * Price
}

// EarningsTable is the inner join of one farm's production with the price series.
type EarningsTable struct {
	Farm string
	Rows []EarningsRow
}

func (e *EarningsTable) Len() int {
	if e == nil {
		return 0
	}
	return len(e.Rows)
}

// Table renders the earnings rows as a three-column Table for export.
func (e *EarningsTable) Table() *Table {
	out := &Table{
		Columns: []string{"production", "price", "earnings"},
		Index:   make([]time.Time, 0, len(e.Rows)),
		Values:  make([][]float64, 0, len(e.Rows)),
	}
	for _, r := range e.Rows {
		out.Index = append(out.Index, r.Timestamp)
		out.Values = append(out.Values, []float64{r.Production, r.Price, r.Earnings})
	}
	return out
}

// Table renders the prices as a single-column Table for export.
func (p *PriceTable) Table() *Table {
	out := &Table{
		Columns: []string{"price"},
		Index:   append([]time.Time(nil), p.Index...),
		Values:  make([][]float64, len(p.Price)),
	}
	for i, v := range p.Price {
		out.Values[i] = []float64{v}
	}
	return out
}
