package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the failed-attempt auditor. The auditor
// is fire-and-forget, so these counters are the only way to notice it
// dropping or failing to persist entries.
type Metrics struct {
	Recorded        prometheus.Counter
	Dropped         prometheus.Counter
	PersistFailures prometheus.Counter
	QueueDepth      prometheus.Gauge
}

// New creates a new Metrics instance with all auditor metrics registered.
func New() *Metrics {
	return &Metrics{
		Recorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gatecheck_audit_attempts_recorded_total",
			Help: "Failed attempts accepted by the auditor",
		}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gatecheck_audit_attempts_dropped_total",
			Help: "Failed attempts dropped because the auditor buffer was full or closed",
		}),
		PersistFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gatecheck_audit_persist_failures_total",
			Help: "Failed-attempt writes the store rejected (contained, never escalated)",
		}),
		QueueDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gatecheck_audit_queue_depth",
			Help: "Failed attempts buffered and awaiting persistence",
		}),
	}
}

// IncRecorded counts an accepted attempt.
func (m *Metrics) IncRecorded() {
	if m != nil {
		m.Recorded.Inc()
	}
}

// IncDropped counts a dropped attempt.
func (m *Metrics) IncDropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}

// IncPersistFailure counts a contained store failure.
func (m *Metrics) IncPersistFailure() {
	if m != nil {
		m.PersistFailures.Inc()
	}
}

// SetQueueDepth records the current buffer occupancy.
func (m *Metrics) SetQueueDepth(n int) {
	if m != nil {
		m.QueueDepth.Set(float64(n))
	}
}
