package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveStoreOp("get_reports", "ok", 10*time.Millisecond)
	m.ObserveStoreOp("get_reports", "ok", 20*time.Millisecond)
	m.ObserveStoreOp("add_report", "unavailable", time.Millisecond)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.FallbackEntered("reports")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.storeOps.WithLabelValues("get_reports", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("add_report", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbackEntries.WithLabelValues("reports")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.storeLatency))
}
