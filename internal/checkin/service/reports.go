package service

import (
	"context"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	dErrors "gatecheck/pkg/domain-errors"
)

// ListSessionRecords returns every attendance record for a session, oldest
// first. Read-only projection for the staff history screen.
func (s *Service) ListSessionRecords(ctx context.Context, sessionID id.SessionID) ([]models.AttendanceRecord, error) {
	records, err := s.ledger.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "attendance store is unavailable")
	}
	return records, nil
}

// ListSessionFailedAttempts returns the audit trail for a session, oldest
// first.
func (s *Service) ListSessionFailedAttempts(ctx context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error) {
	if s.attempts == nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "failed-attempt store is not configured")
	}
	attempts, err := s.attempts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed-attempt store is unavailable")
	}
	return attempts, nil
}
