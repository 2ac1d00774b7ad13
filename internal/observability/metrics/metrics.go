package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "windfarm_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	loadTotal   *prometheus.CounterVec
	loadLatency *prometheus.HistogramVec
	loadDropped *prometheus.CounterVec

	cacheLookups *prometheus.CounterVec
	cacheEntries prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	exportTotal *prometheus.CounterVec
)

// Init registers the dashboard metrics with the default registry.
// Observe* helpers are no-ops until Init has run, so library code and tests
// can call them unconditionally.
func Init() {
	registerOnce.Do(func() {
		loadTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "source_load_total",
				Help: "Source file loads by kind and result",
			},
			[]string{"kind", "result"},
		)
		loadLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "source_load_latency_seconds",
				Help:    "Source file load and parse latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		)
		loadDropped = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "source_rows_dropped_total",
				Help: "Source rows dropped because the timestamp did not parse",
			},
			[]string{"kind"},
		)

		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Memo cache lookups by operation and outcome",
			},
			[]string{"operation", "outcome"},
		)
		cacheEntries = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "cache_entries",
				Help: "Entries currently held by the memo cache",
			},
		)

		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "HTTP requests by route and status",
			},
			[]string{"route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_latency_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Table exports by table, format and result",
			},
			[]string{"table", "format", "result"},
		)

		prometheus.MustRegister(
			loadTotal,
			loadLatency,
			loadDropped,
			cacheLookups,
			cacheEntries,
			httpRequests,
			httpLatency,
			exportTotal,
		)
	})
}

// ObserveLoad records a source load for kind ("production", "prices").
func ObserveLoad(kind string, err error, duration time.Duration) {
	if kind == "" {
		kind = "unknown"
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if loadTotal != nil {
		loadTotal.WithLabelValues(kind, result).Inc()
	}
	if loadLatency != nil {
		loadLatency.WithLabelValues(kind).Observe(duration.Seconds())
	}
}

// AddDroppedRows counts rows excluded during normalization.
func AddDroppedRows(kind string, n int) {
	if n <= 0 {
		return
	}
	if loadDropped != nil {
		loadDropped.WithLabelValues(kind).Add(float64(n))
	}
}

// IncCacheLookup counts a memo cache hit or miss.
func IncCacheLookup(operation string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(operation, outcome).Inc()
	}
}

// SetCacheEntries reports the current memo cache size.
func SetCacheEntries(n int) {
	if cacheEntries != nil {
		cacheEntries.Set(float64(n))
	}
}

// ObserveHTTP records one served request.
func ObserveHTTP(route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(route, status).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(route).Observe(duration.Seconds())
	}
}

// IncExport counts an export by table and format.
func IncExport(table, format string, err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(table, format, result).Inc()
	}
}
