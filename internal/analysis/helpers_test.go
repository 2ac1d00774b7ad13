package analysis

import (
	"time"

	"windfarm-analytics/internal/model"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func hours(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = t0.Add(time.Duration(i) * time.Hour)
	}
	return out
}

func series(name string, values ...float64) model.Series {
	return model.Series{Name: name, Index: hours(len(values)), Values: values}
}

func priceTable(values ...float64) *model.PriceTable {
	return &model.PriceTable{Index: hours(len(values)), Price: values}
}
