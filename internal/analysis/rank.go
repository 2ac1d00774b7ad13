package analysis

import (
	"sort"
	"time"

	"windfarm-analytics/internal/model"
)

// DefaultTopN is used when a caller asks for a non-positive ranking size.
const DefaultTopN = 10

// RankedHour is one entry of a top/bottom table.
type RankedHour struct {
	Rank      int       `json:"rank"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TopN returns the n largest values, largest first.
// Equal values keep ascending timestamp order. Missing values are ignored.
func TopN(index []time.Time, values []float64, n int) []RankedHour {
	return rankHours(index, values, n, true)
}

// BottomN returns the n smallest values, smallest first, with the same tie rule as TopN.
func BottomN(index []time.Time, values []float64, n int) []RankedHour {
	return rankHours(index, values, n, false)
}

func rankHours(index []time.Time, values []float64, n int, descending bool) []RankedHour {
	if n <= 0 {
		n = DefaultTopN
	}
	out := make([]RankedHour, 0, len(values))
	for i, v := range values {
		if model.IsMissing(v) {
			continue
		}
		out = append(out, RankedHour{Timestamp: index[i], Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			if descending {
				return out[i].Value > out[j].Value
			}
			return out[i].Value < out[j].Value
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	if n > len(out) {
		n = len(out)
	}
	out = out[:n]
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
