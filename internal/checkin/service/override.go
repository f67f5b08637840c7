package service

import (
	"context"
	"errors"
	"strings"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	dErrors "gatecheck/pkg/domain-errors"
	"gatecheck/pkg/platform/sentinel"
	"gatecheck/pkg/requestcontext"
)

// OverrideRecord records attendance on a supervisor's authority, bypassing
// eligibility checks. The registration must still exist: an override vouches
// for a person, it does not invent one. Every override record permanently
// carries the justification.
func (s *Service) OverrideRecord(
	ctx context.Context,
	registrationID id.RegistrationID,
	sessionID id.SessionID,
	operatorID id.OperatorID,
	justification string,
) (*models.Outcome, error) {
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "override justification must not be empty")
	}
	if operatorID.IsEmpty() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "override requires an authenticated operator")
	}

	reg, err := s.registrations.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "registration not found")
		}
		s.logger.ErrorContext(ctx, "registration lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", registrationID.String(),
			"error", err,
		)
		return storeUnavailableOutcome(), nil
	}

	outcome := s.insert(ctx, models.AttendanceRecord{
		ID:             id.NewRecordID(),
		RegistrationID: reg.ID,
		SessionID:      sessionID,
		RecordedAt:     s.now(ctx),
		Channel:        id.ChannelManual,
		OperatorID:     operatorID,
		OverrideReason: justification,
	})

	s.metrics.IncrementOutcome(id.ChannelManual.String(), string(outcome.Status))
	s.logger.InfoContext(ctx, "override processed",
		"request_id", requestcontext.RequestID(ctx),
		"registration_id", registrationID.String(),
		"session_id", sessionID.String(),
		"operator_id", operatorID.String(),
		"status", string(outcome.Status),
	)
	return outcome, nil
}
