package data

import (
	"time"

	"windfarm-analytics/internal/model"

	"github.com/samber/lo"
)

// LoadPrices reads a two-column spot price sheet (timestamp, price).
// The first row is treated as a label row when its first cell is not a
// timestamp. Later rows with an unparseable timestamp are dropped.
func LoadPrices(path, sheet string, parser TimeParser) (*model.PriceTable, error) {
	raw, err := LoadRaw(path, sheet)
	if err != nil {
		return nil, err
	}
	return NormalizePrices(raw, parser)
}

// NormalizePrices interprets an already loaded raw price sheet.
func NormalizePrices(raw *model.RawTable, parser TimeParser) (*model.PriceTable, error) {
	if raw == nil || len(raw.Rows) == 0 {
		path := ""
		if raw != nil {
			path = raw.Path
		}
		return nil, model.Malformed(path, "price sheet is empty", nil)
	}
	// Spreadsheet readers trim trailing empty cells, so a short first row
	// only means its price is blank. The sheet is malformed when no row
	// reaches a price column at all.
	widest := lo.Max(lo.Map(raw.Rows, func(cells []string, _ int) int { return len(cells) }))
	if widest < 2 {
		return nil, model.Malformed(raw.Path, "price sheet needs a timestamp and a price column", nil)
	}

	rows := raw.Rows
	if _, ok := parser.Parse(raw.Cell(0, 0)); !ok {
		rows = rows[1:]
	}

	out := &model.PriceTable{
		Path:  raw.Path,
		Index: make([]time.Time, 0, len(rows)),
		Price: make([]float64, 0, len(rows)),
	}
	for _, cells := range rows {
		if len(cells) == 0 {
			out.Dropped++
			continue
		}
		ts, ok := parser.Parse(cells[0])
		if !ok {
			out.Dropped++
			continue
		}
		price := model.Missing
		if len(cells) > 1 {
			price = ParseNumber(cells[1])
		}
		out.Index = append(out.Index, ts)
		out.Price = append(out.Price, price)
	}
	return out, nil
}
