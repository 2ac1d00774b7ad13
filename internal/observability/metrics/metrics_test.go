package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHelpersBeforeInit(t *testing.T) {
	// Must not panic while the collectors are still nil.
	if loadTotal != nil {
		t.Skip("metrics already initialised")
	}
	ObserveLoad("production", nil, time.Millisecond)
	AddDroppedRows("production", 3)
	IncCacheLookup("production", true)
	SetCacheEntries(2)
	ObserveHTTP("/api/v1/farms", "200", time.Millisecond)
	IncExport("earnings", "csv", nil)
}

func TestHelpersRecord(t *testing.T) {
	Init()
	Init()

	ObserveLoad("prices", errors.New("boom"), time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(loadTotal.WithLabelValues("prices", resultError)))

	AddDroppedRows("prices", 0)
	AddDroppedRows("prices", 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(loadDropped.WithLabelValues("prices")))

	IncCacheLookup("earnings", false)
	IncCacheLookup("earnings", true)
	IncCacheLookup("earnings", true)
	assert.Equal(t, 2.0, testutil.ToFloat64(cacheLookups.WithLabelValues("earnings", "hit")))

	SetCacheEntries(5)
	assert.Equal(t, 5.0, testutil.ToFloat64(cacheEntries))

	ObserveHTTP("", "404", time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequests.WithLabelValues("unmatched", "404")))

	IncExport("prices", "xlsx", nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(exportTotal.WithLabelValues("prices", "xlsx", resultSuccess)))
}
