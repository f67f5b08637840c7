// Package audit persists failed check-in attempts without ever blocking or
// failing the operator-facing flow. Every rejected or erroring scan is
// handed to the Auditor fire-and-forget; a background worker performs the
// durable write, and write failures are logged locally and swallowed.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatecheck/internal/audit/metrics"
	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// Store is the durable, append-only failed-attempt store. No read path
// depends on it during check-in; ListBySession backs audit screens only.
type Store interface {
	Append(ctx context.Context, attempt models.FailedAttempt) error
	ListBySession(ctx context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error)
}

// Sink receives a best-effort mirror of every persisted attempt (e.g. the
// Kafka mirror for the venue's security pipeline). Sinks must not block.
type Sink interface {
	Publish(ctx context.Context, attempt models.FailedAttempt)
	Close()
}

// persistTimeout bounds each background write so a hung store cannot wedge
// the worker forever.
const persistTimeout = 5 * time.Second

// Auditor consumes failed attempts from a bounded buffer and persists them.
// Record never blocks: when the buffer is full the attempt is dropped and
// counted, because an audit backlog must not slow down the check-in line.
type Auditor struct {
	store   Store
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Metrics

	inbox chan models.FailedAttempt
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithSink attaches a best-effort mirror sink.
func WithSink(sink Sink) Option {
	return func(a *Auditor) { a.sink = sink }
}

// WithMetrics attaches auditor metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Auditor) { a.metrics = m }
}

// New builds an Auditor and starts its worker. Close drains the buffer.
func New(store Store, logger *slog.Logger, bufferSize int, opts ...Option) *Auditor {
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	a := &Auditor{
		store:  store,
		logger: logger,
		inbox:  make(chan models.FailedAttempt, bufferSize),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	go a.run()
	return a
}

// Record hands an attempt to the auditor. It is fire-and-forget: missing
// identifiers and timestamps are stamped here, and the call returns
// immediately whether or not the attempt could be buffered.
func (a *Auditor) Record(ctx context.Context, attempt models.FailedAttempt) {
	if attempt.ID.IsNil() {
		attempt.ID = id.NewAttemptID()
	}
	if attempt.OccurredAt.IsZero() {
		attempt.OccurredAt = time.Now()
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		a.metrics.IncDropped()
		return
	}

	select {
	case a.inbox <- attempt:
		a.metrics.IncRecorded()
		a.metrics.SetQueueDepth(len(a.inbox))
	default:
		a.metrics.IncDropped()
		a.logger.WarnContext(ctx, "auditor buffer full, dropping failed attempt",
			"reason", attempt.Reason,
			"channel", attempt.Channel,
		)
	}
}

// run is the worker loop. It owns all durable writes; a store failure is
// logged and swallowed so audit logging can never cascade into an
// operational failure.
func (a *Auditor) run() {
	defer close(a.done)
	for attempt := range a.inbox {
		a.metrics.SetQueueDepth(len(a.inbox))

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err := a.store.Append(ctx, attempt)
		cancel()
		if err != nil {
			a.metrics.IncPersistFailure()
			a.logger.Error("failed to persist failed attempt",
				"attempt_id", attempt.ID,
				"reason", attempt.Reason,
				"error", err,
			)
			continue
		}

		if a.sink != nil {
			a.sink.Publish(context.Background(), attempt)
		}
	}
}

// Close stops accepting new attempts, drains the buffer, and closes the sink.
func (a *Auditor) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.mu.Unlock()

	close(a.inbox)
	<-a.done

	if a.sink != nil {
		a.sink.Close()
	}
}
