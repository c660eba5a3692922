package registration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the service.
type Metrics struct {
	registrations *prometheus.CounterVec
}

// NewMetrics creates and registers the metrics. Call once per process.
func NewMetrics() *Metrics {
	return &Metrics{
		registrations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveOutcome records one registration attempt. Nil-safe so handlers
// under test can run without a registry.
func (m *Metrics) ObserveOutcome(kind OutcomeKind) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(kind.String()).Inc()
}
