package analysis

import "windfarm-analytics/internal/model"

// PriceSummary describes the spot price series on its own.
type PriceSummary struct {
	Rows     int          `json:"rows"`
	AvgPrice *float64     `json:"avg_price"`
	MinPrice *float64     `json:"min_price"`
	MaxPrice *float64     `json:"max_price"`
	Monthly  []Bucket     `json:"monthly_avg"`
	Top      []RankedHour `json:"top_hours"`
	Bottom   []RankedHour `json:"bottom_hours"`
}

// SummarizePrices computes the average price, monthly mean prices and the
// highest and lowest priced hours. Missing prices are ignored throughout.
func SummarizePrices(p *model.PriceTable, topN int) PriceSummary {
	out := PriceSummary{
		Rows:    p.Len(),
		Monthly: ResampleMean(p.Index, p.Price, Monthly),
		Top:     TopN(p.Index, p.Price, topN),
		Bottom:  BottomN(p.Index, p.Price, topN),
	}

	n, sum := 0, 0.0
	var lowest, highest float64
	for _, v := range p.Price {
		if model.IsMissing(v) {
			continue
		}
		if n == 0 || v < lowest {
			lowest = v
		}
		if n == 0 || v > highest {
			highest = v
		}
		sum += v
		n++
	}
	if n > 0 {
		avg := sum / float64(n)
		out.AvgPrice = &avg
		out.MinPrice = &lowest
		out.MaxPrice = &highest
	}
	return out
}

// FilterPriceYear keeps prices whose timestamp falls in the given year.
func FilterPriceYear(p *model.PriceTable, year int) *model.PriceTable {
	out := &model.PriceTable{Path: p.Path}
	for i, ts := range p.Index {
		if ts.Year() != year {
			continue
		}
		out.Index = append(out.Index, ts)
		out.Price = append(out.Price, p.Price[i])
	}
	return out
}
