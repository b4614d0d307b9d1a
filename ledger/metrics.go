package ledger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// --- Metrics ---

// Metrics holds all the Prometheus metrics for the ledger client.
type Metrics struct {
	callDuration *prometheus.HistogramVec
	callsTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers the metrics for the ledger client.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		callDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_rpc_duration_seconds",
			Help:    "Time taken by a single Sui JSON-RPC call.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_rpc_calls_total",
			Help: "Total number of Sui JSON-RPC calls, labeled by method and result.",
		}, []string{"method", "result"}),
	}
	reg.MustRegister(m.callDuration, m.callsTotal)
	return m
}

func (m *Metrics) observe(method string, start time.Time, err error) {
	m.callDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.callsTotal.WithLabelValues(method, result).Inc()
}
