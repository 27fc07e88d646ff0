// Package metrics публикует метрики хранилища и сессий в Prometheus
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "civic_guardian"

// Metrics - набор коллекторов приложения
type Metrics struct {
	storeOps        *prometheus.CounterVec
	storeLatency    *prometheus.HistogramVec
	activeSessions  prometheus.Gauge
	fallbackEntries *prometheus.CounterVec
}

// New создает коллекторы и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by name and result.",
		}, []string{"op", "result"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Sessions currently held in memory.",
		}),
		fallbackEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "fallback_total",
			Help:      "Collections that switched to session-only fallback.",
		}, []string{"collection"}),
	}
	reg.MustRegister(m.storeOps, m.storeLatency, m.activeSessions, m.fallbackEntries)
	return m
}

// ObserveStoreOp учитывает одну операцию хранилища
func (m *Metrics) ObserveStoreOp(op, result string, elapsed time.Duration) {
	m.storeOps.WithLabelValues(op, result).Inc()
	m.storeLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// SessionOpened и SessionClosed поддерживают gauge активных сессий
func (m *Metrics) SessionOpened() { m.activeSessions.Inc() }

func (m *Metrics) SessionClosed() { m.activeSessions.Dec() }

// FallbackEntered учитывает переход коллекции в режим только-сессии
func (m *Metrics) FallbackEntered(collection string) {
	m.fallbackEntries.WithLabelValues(collection).Inc()
}
