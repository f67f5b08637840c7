package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the check-in module.
type Metrics struct {
	// Check-in outcomes by channel and status
	Outcomes *prometheus.CounterVec

	// Rejections by failure reason
	Rejections *prometheus.CounterVec

	// Overall check-in latency including directory lookups and ledger write
	RecordLatency prometheus.Histogram
}

// New creates a new Metrics instance with all check-in module metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gatecheck_checkin_outcomes_total",
			Help: "Total check-in outcomes by channel and status",
		}, []string{"channel", "status"}), // status: "recorded", "already_recorded", "rejected"

		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gatecheck_checkin_rejections_total",
			Help: "Total rejected check-in attempts by failure reason",
		}, []string{"reason"}),

		RecordLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gatecheck_checkin_record_duration_seconds",
			Help:    "Duration of full check-in processing including lookups and ledger write",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementOutcome records a check-in outcome.
func (m *Metrics) IncrementOutcome(channel, status string) {
	if m != nil {
		m.Outcomes.WithLabelValues(channel, status).Inc()
	}
}

// IncrementRejection records a rejected attempt by reason.
func (m *Metrics) IncrementRejection(reason string) {
	if m != nil {
		m.Rejections.WithLabelValues(reason).Inc()
	}
}

// ObserveRecordLatency records the total check-in processing duration.
func (m *Metrics) ObserveRecordLatency(d time.Duration) {
	if m != nil {
		m.RecordLatency.Observe(d.Seconds())
	}
}
