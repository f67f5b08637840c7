// Package service orchestrates the check-in flow: normalize the candidate
// code, validate eligibility, and record attendance atomically. Handlers stay
// thin; all business rules live here or in models.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gatecheck/internal/checkin/code"
	"gatecheck/internal/checkin/metrics"
	"gatecheck/internal/checkin/ports"
	"gatecheck/pkg/requestcontext"
)

// WindowPolicy is the explicit session acceptance window configuration. Both
// bounds are deliberate operator decisions, never inferred from session data.
type WindowPolicy struct {
	EarlyCheckinLead time.Duration
	LateGracePeriod  time.Duration
}

// DefaultWindowPolicy matches the documented defaults: doors open one hour
// before start, stragglers get fifteen minutes after end.
func DefaultWindowPolicy() WindowPolicy {
	return WindowPolicy{
		EarlyCheckinLead: time.Hour,
		LateGracePeriod:  15 * time.Minute,
	}
}

// Service is the single writer of attendance records. All input channels and
// the override path funnel through it.
type Service struct {
	registrations ports.RegistrationDirectory
	sessions      ports.SessionDirectory
	ledger        ports.Ledger
	auditor       ports.Auditor
	attempts      ports.FailedAttemptLister
	normalizer    *code.Normalizer
	policy        WindowPolicy
	logger        *slog.Logger
	metrics       *metrics.Metrics
	tracer        trace.Tracer
}

type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithWindowPolicy(p WindowPolicy) Option {
	return func(s *Service) { s.policy = p }
}

func WithNormalizer(n *code.Normalizer) Option {
	return func(s *Service) { s.normalizer = n }
}

// WithFailedAttempts enables the per-session failure report reads.
func WithFailedAttempts(lister ports.FailedAttemptLister) Option {
	return func(s *Service) { s.attempts = lister }
}

func New(
	registrations ports.RegistrationDirectory,
	sessions ports.SessionDirectory,
	ledger ports.Ledger,
	auditor ports.Auditor,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		registrations: registrations,
		sessions:      sessions,
		ledger:        ledger,
		auditor:       auditor,
		normalizer:    code.New(code.DefaultMaxLength),
		policy:        DefaultWindowPolicy(),
		logger:        logger,
		tracer:        otel.Tracer("gatecheck/checkin"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// now resolves the decision instant once per operation so every window check
// within one check-in sees the same clock reading.
func (s *Service) now(ctx context.Context) time.Time {
	return requestcontext.Now(ctx)
}

func outcomeAttrs(status, channel string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("checkin.status", status),
		attribute.String("checkin.channel", channel),
	}
}
