package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics implements cycler.Metrics using Prometheus.
type Metrics struct {
	lookupDuration *prometheus.HistogramVec
	stepsTotal     *prometheus.CounterVec
}

// NewMetrics creates a new Prometheus metrics implementation.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		lookupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycler_lookup_duration_seconds",
			Help:      "Latency of random-access interval lookups.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),

		stepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycler_cursor_steps_total",
			Help:      "Total number of cursor traversal steps.",
		}, []string{"direction"}),
	}
}

func (m *Metrics) RecordLookup(op string, duration time.Duration) {
	m.lookupDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *Metrics) RecordStep(direction string) {
	m.stepsTotal.WithLabelValues(direction).Inc()
}
