package analysis

import (
	"time"

	"windfarm-analytics/internal/model"

	"github.com/samber/lo"
)

// ProductionMetrics summarise a farm selection over a date range.
type ProductionMetrics struct {
	TotalProduction float64   `json:"total_production_mwh"`
	AvgDaily        *float64  `json:"avg_daily_mwh"`
	PeakDay         *DayValue `json:"peak_day"`
	AvgHourly       *float64  `json:"avg_hourly_mwh"`
	Days            int       `json:"days"`
	Hours           int       `json:"hours"`
}

// ProductionSummary is the filtered table plus its aggregates.
type ProductionSummary struct {
	Table   *model.Table      `json:"-"`
	Hourly  []float64         `json:"-"`
	Daily   []Bucket          `json:"daily"`
	Monthly []Bucket          `json:"monthly"`
	Metrics ProductionMetrics `json:"metrics"`
}

// dateKey orders calendar dates independently of clock time and zone.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// SelectFarms restricts a table to the named columns, in the order given.
// Repeated names are kept once. Any name that is not a column yields
// ErrUnknownFarm and no table.
func SelectFarms(t *model.Table, farms []string) (*model.Table, error) {
	farms = lo.Uniq(farms)
	cols := make([]int, len(farms))
	for i, name := range farms {
		col, ok := t.ColumnIndex(name)
		if !ok {
			return nil, model.UnknownFarm(name)
		}
		cols[i] = col
	}

	out := &model.Table{
		Columns: append([]string(nil), farms...),
		Index:   make([]time.Time, 0, t.Len()),
		Values:  make([][]float64, 0, t.Len()),
	}
	for i, ts := range t.Index {
		row := make([]float64, len(cols))
		for j, col := range cols {
			row[j] = t.Values[i][col]
		}
		out.Index = append(out.Index, ts)
		out.Values = append(out.Values, row)
	}
	return out, nil
}

// FilterDates keeps rows whose calendar date lies in [start, end], inclusive.
// Only the dates of start and end are used.
func FilterDates(t *model.Table, start, end time.Time) *model.Table {
	from, to := dateKey(start), dateKey(end)
	out := &model.Table{
		Columns: append([]string(nil), t.Columns...),
		Index:   []time.Time{},
		Values:  [][]float64{},
	}
	for i, ts := range t.Index {
		k := dateKey(ts)
		if k < from || k > to {
			continue
		}
		out.Index = append(out.Index, ts)
		out.Values = append(out.Values, append([]float64(nil), t.Values[i]...))
	}
	return out
}

// HourlyTotals sums each row across columns. Missing cells count as zero
// here, unlike the earnings join which drops incomplete rows.
func HourlyTotals(t *model.Table) []float64 {
	out := make([]float64, t.Len())
	for i, row := range t.Values {
		for _, v := range row {
			if !model.IsMissing(v) {
				out[i] += v
			}
		}
	}
	return out
}

// AggregateProduction filters a production table to a farm selection and an
// inclusive date range, then derives hourly, daily and monthly totals.
func AggregateProduction(t *model.Table, farms []string, start, end time.Time) (*ProductionSummary, error) {
	selected, err := SelectFarms(t, farms)
	if err != nil {
		return nil, err
	}
	filtered := FilterDates(selected, start, end)
	hourly := HourlyTotals(filtered)
	daily := ResampleSum(filtered.Index, hourly, Daily)

	m := ProductionMetrics{Days: len(daily), Hours: filtered.Len()}
	for _, d := range daily {
		m.TotalProduction += d.Value
	}
	if len(daily) > 0 {
		avg := m.TotalProduction / float64(len(daily))
		m.AvgDaily = &avg
	}
	if peak, ok := MaxBucket(daily); ok {
		m.PeakDay = &DayValue{Date: peak.Start, Value: peak.Value}
	}

	cells, sum := 0, 0.0
	for _, row := range filtered.Values {
		for _, v := range row {
			if model.IsMissing(v) {
				continue
			}
			sum += v
			cells++
		}
	}
	if cells > 0 {
		avg := sum / float64(cells)
		m.AvgHourly = &avg
	}

	return &ProductionSummary{
		Table:   filtered,
		Hourly:  hourly,
		Daily:   daily,
		Monthly: ResampleBuckets(daily, Monthly),
		Metrics: m,
	}, nil
}
