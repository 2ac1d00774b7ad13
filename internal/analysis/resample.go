package analysis

import (
	"sort"
	"time"

	"windfarm-analytics/internal/model"

	"github.com/jinzhu/now"
)

// Granularity is a calendar bucket size.
type Granularity string

const (
	Daily   Granularity = "day"
	Monthly Granularity = "month"
)

// Bucket is one calendar period of a resampled series.
type Bucket struct {
	Start time.Time `json:"start"`
	Value float64   `json:"value"`
	Count int       `json:"count"`
}

// Truncate returns the start of the calendar bucket containing t, in t's location.
func Truncate(t time.Time, g Granularity) time.Time {
	if g == Monthly {
		return now.With(t).BeginningOfMonth()
	}
	return now.With(t).BeginningOfDay()
}

// ResampleSum sums values per calendar bucket. Missing values are skipped and
// buckets without any value are omitted rather than zero-filled. Buckets are
// returned in chronological order.
func ResampleSum(index []time.Time, values []float64, g Granularity) []Bucket {
	return resample(index, values, g, false)
}

// ResampleMean averages values per calendar bucket, with the same rules as ResampleSum.
func ResampleMean(index []time.Time, values []float64, g Granularity) []Bucket {
	return resample(index, values, g, true)
}

// ResampleBuckets re-aggregates finer buckets (e.g. daily totals into months) by summing.
func ResampleBuckets(in []Bucket, g Granularity) []Bucket {
	index := make([]time.Time, len(in))
	values := make([]float64, len(in))
	for i, b := range in {
		index[i] = b.Start
		values[i] = b.Value
	}
	return ResampleSum(index, values, g)
}

func resample(index []time.Time, values []float64, g Granularity, mean bool) []Bucket {
	byStart := make(map[int64]*Bucket)
	for i, ts := range index {
		v := values[i]
		if model.IsMissing(v) {
			continue
		}
		start := Truncate(ts, g)
		key := start.Unix()
		b, ok := byStart[key]
		if !ok {
			b = &Bucket{Start: start}
			byStart[key] = b
		}
		b.Value += v
		b.Count++
	}

	out := make([]Bucket, 0, len(byStart))
	for _, b := range byStart {
		if mean {
			b.Value /= float64(b.Count)
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// MaxBucket returns the bucket with the largest value; ties go to the earliest.
func MaxBucket(buckets []Bucket) (Bucket, bool) {
	if len(buckets) == 0 {
		return Bucket{}, false
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.Value > best.Value || (b.Value == best.Value && b.Start.Before(best.Start)) {
			best = b
		}
	}
	return best, true
}
