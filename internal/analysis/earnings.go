package analysis

import (
	"time"

	"windfarm-analytics/internal/model"
)

// ComputeEarnings joins a farm's production with spot prices on timestamp.
//
// Only timestamps present in both inputs survive, and a row is dropped when
// either value is missing; nothing is filled or interpolated. Rows follow
// the production order. A duplicated price timestamp yields one row per match.
func ComputeEarnings(production model.Series, prices *model.PriceTable) *model.EarningsTable {
	byTime := make(map[int64][]int, prices.Len())
	for i, ts := range prices.Index {
		k := ts.UnixNano()
		byTime[k] = append(byTime[k], i)
	}

	out := &model.EarningsTable{Farm: production.Name, Rows: []model.EarningsRow{}}
	for i, ts := range production.Index {
		prod := production.Values[i]
		if model.IsMissing(prod) {
			continue
		}
		for _, j := range byTime[ts.UnixNano()] {
			price := prices.Price[j]
			if model.IsMissing(price) {
				continue
			}
			out.Rows = append(out.Rows, model.EarningsRow{
				Timestamp:  ts,
				Production: prod,
				Price:      price,
				Earnings:   prod * price,
			})
		}
	}
	return out
}

// DayValue is a calendar day and an aggregated value for it.
type DayValue struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// EarningsMetrics are the scalar results derived from an EarningsTable.
// A nil pointer means the figure is undefined for this table (zero denominator
// or no rows).
type EarningsMetrics struct {
	Rows             int       `json:"rows"`
	TotalEarnings    float64   `json:"total_earnings"`
	TotalProduction  float64   `json:"total_production_mwh"`
	WeightedAvgPrice *float64  `json:"weighted_avg_price"`
	AvgSpotPrice     *float64  `json:"avg_spot_price"`
	CaptureRate      *float64  `json:"capture_rate"`
	BestDay          *DayValue `json:"best_day"`
}

// EarningsSummary bundles the metrics with the resampled and ranked views.
type EarningsSummary struct {
	Farm    string          `json:"farm"`
	Metrics EarningsMetrics `json:"metrics"`
	Daily   []Bucket        `json:"daily"`
	Monthly []Bucket        `json:"monthly"`
	Top     []RankedHour    `json:"top_hours"`
	Bottom  []RankedHour    `json:"bottom_hours"`
}

// TotalEarnings sums earnings over all rows.
func TotalEarnings(t *model.EarningsTable) float64 {
	total := 0.0
	for _, r := range t.Rows {
		total += r.Earnings
	}
	return total
}

// WeightedAveragePrice is total earnings divided by total production.
func WeightedAveragePrice(t *model.EarningsTable) (float64, error) {
	production := 0.0
	for _, r := range t.Rows {
		production += r.Production
	}
	if production == 0 {
		return 0, model.ErrDivisionUndefined
	}
	return TotalEarnings(t) / production, nil
}

// AverageSpotPrice is the unweighted mean price over the joined rows.
func AverageSpotPrice(t *model.EarningsTable) (float64, error) {
	if t.Len() == 0 {
		return 0, model.ErrDivisionUndefined
	}
	sum := 0.0
	for _, r := range t.Rows {
		sum += r.Price
	}
	return sum / float64(len(t.Rows)), nil
}

// CaptureRate is the weighted average price over the average spot price,
// both computed over the same joined rows.
func CaptureRate(t *model.EarningsTable) (float64, error) {
	weighted, err := WeightedAveragePrice(t)
	if err != nil {
		return 0, err
	}
	spot, err := AverageSpotPrice(t)
	if err != nil {
		return 0, err
	}
	if spot == 0 {
		return 0, model.ErrDivisionUndefined
	}
	return weighted / spot, nil
}

// EarningsSeries returns the timestamps and earnings columns.
func EarningsSeries(t *model.EarningsTable) ([]time.Time, []float64) {
	index := make([]time.Time, len(t.Rows))
	values := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		index[i] = r.Timestamp
		values[i] = r.Earnings
	}
	return index, values
}

// SummarizeEarnings derives metrics, daily/monthly sums and top/bottom hours.
func SummarizeEarnings(t *model.EarningsTable, topN int) EarningsSummary {
	index, values := EarningsSeries(t)
	daily := ResampleSum(index, values, Daily)

	m := EarningsMetrics{
		Rows:          t.Len(),
		TotalEarnings: TotalEarnings(t),
	}
	for _, r := range t.Rows {
		m.TotalProduction += r.Production
	}
	if v, err := WeightedAveragePrice(t); err == nil {
		m.WeightedAvgPrice = &v
	}
	if v, err := AverageSpotPrice(t); err == nil {
		m.AvgSpotPrice = &v
	}
	if v, err := CaptureRate(t); err == nil {
		m.CaptureRate = &v
	}
	if best, ok := MaxBucket(daily); ok {
		m.BestDay = &DayValue{Date: best.Start, Value: best.Value}
	}

	return EarningsSummary{
		Farm:    t.Farm,
		Metrics: m,
		Daily:   daily,
		Monthly: ResampleSum(index, values, Monthly),
		Top:     TopN(index, values, topN),
		Bottom:  BottomN(index, values, topN),
	}
}
