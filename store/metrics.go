// SPDX-License-Identifier: MIT

package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a GraphStore.
// A nil *Metrics records nothing.
type Metrics struct {
	ops      *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the store collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphrox_store_operations_total",
			Help: "Total number of store operations, labelled by operation and status.",
		}, []string{"op", "status"}),
		bytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphrox_store_bytes_total",
			Help: "Total number of stored bytes transferred, labelled by operation.",
		}, []string{"op"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphrox_store_operation_duration_seconds",
			Help:    "Store operation latency in seconds, including encoding.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"op"}),
	}
}

func (m *Metrics) observe(op string, n int, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ops.WithLabelValues(op, status).Inc()
	if n > 0 {
		m.bytes.WithLabelValues(op).Add(float64(n))
	}
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}
