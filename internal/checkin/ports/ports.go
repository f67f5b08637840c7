// Package ports defines the interfaces the check-in service depends on.
// Keeping them here maintains the boundary between orchestration and the
// stores/directories that back it.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// RegistrationDirectory resolves candidate codes to registrations. Backed by
// the external registration subsystem; reads may be stale relative to
// concurrent staff edits, which is accepted.
type RegistrationDirectory interface {
	FindByCode(ctx context.Context, code string) (*models.Registration, error)
	FindByID(ctx context.Context, registrationID id.RegistrationID) (*models.Registration, error)
}

// SessionDirectory resolves session IDs to sessions with their time bounds
// and active flag. Backed by the external event-setup subsystem.
type SessionDirectory interface {
	FindByID(ctx context.Context, sessionID id.SessionID) (*models.Session, error)
}

// InsertResult reports the outcome of an atomic insert-if-absent. Record is
// always the row now in the ledger: the new one when Inserted, the winning
// one otherwise.
type InsertResult struct {
	Inserted bool
	Record   *models.AttendanceRecord
}

// Ledger is the authoritative attendance store. Uniqueness on
// (registration, session) is enforced by the store itself, not application
// logic: InsertIfAbsent must be a single atomic operation against the
// backing store. No other component writes attendance records.
type Ledger interface {
	InsertIfAbsent(ctx context.Context, record models.AttendanceRecord) (*InsertResult, error)
	FindByPair(ctx context.Context, registrationID id.RegistrationID, sessionID id.SessionID) (*models.AttendanceRecord, error)
	ListBySession(ctx context.Context, sessionID id.SessionID) ([]models.AttendanceRecord, error)
}

// Auditor accepts failed-attempt records fire-and-forget: it must never block
// or fail the user-facing check-in flow.
type Auditor interface {
	Record(ctx context.Context, attempt models.FailedAttempt)
}

// FailedAttemptLister is the read side of the audit trail, backing the
// per-session failure report. Reads never go through the Auditor itself.
type FailedAttemptLister interface {
	ListBySession(ctx context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error)
}
