package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the loan request lifecycle.
type Metrics struct {
	// Capacity decisions by outcome
	DecisionOutcome *prometheus.CounterVec

	// Best-effort notifications that could not be delivered, by kind
	NotificationFailures *prometheus.CounterVec
}

// New registers the lifecycle metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DecisionOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_request_decisions_total",
			Help: "Total capacity decisions by outcome",
		}, []string{"outcome"}), // APPROVED, REJECTED, MANUAL_REVIEW

		NotificationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_request_notification_failures_total",
			Help: "Total notifications that failed to reach the sink",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveDecision(outcome string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveNotificationFailure(kind string) {
	if m != nil {
		m.NotificationFailures.WithLabelValues(kind).Inc()
	}
}
