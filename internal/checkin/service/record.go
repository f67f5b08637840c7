package service

import (
	"context"
	"time"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	dErrors "gatecheck/pkg/domain-errors"
	"gatecheck/pkg/requestcontext"
)

// RecordAttendance processes one candidate code end to end and always returns
// a definite outcome. Infrastructure failure is an outcome too: the operator
// sees store_unavailable, never a false success.
//
// The error return is reserved for caller mistakes (invalid channel); every
// scan-level failure is expressed in the Outcome so the device flow stays a
// single code path.
func (s *Service) RecordAttendance(
	ctx context.Context,
	rawCode string,
	sessionID id.SessionID,
	channel id.Channel,
	operatorID id.OperatorID,
) (*models.Outcome, error) {
	if !channel.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown channel: "+channel.String())
	}

	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "checkin.record")
	defer span.End()

	outcome := s.record(ctx, rawCode, sessionID, channel, operatorID)

	span.SetAttributes(outcomeAttrs(string(outcome.Status), channel.String())...)
	s.metrics.IncrementOutcome(channel.String(), string(outcome.Status))
	if outcome.Status == models.StatusRejected {
		s.metrics.IncrementRejection(string(outcome.Reason))
	}
	s.metrics.ObserveRecordLatency(time.Since(start))

	s.logger.InfoContext(ctx, "check-in processed",
		"request_id", requestcontext.RequestID(ctx),
		"session_id", sessionID.String(),
		"channel", channel.String(),
		"status", string(outcome.Status),
		"reason", string(outcome.Reason),
	)
	return outcome, nil
}

func (s *Service) record(
	ctx context.Context,
	rawCode string,
	sessionID id.SessionID,
	channel id.Channel,
	operatorID id.OperatorID,
) *models.Outcome {
	normalized, err := s.normalizer.Normalize(rawCode)
	if err != nil {
		return s.reject(ctx, rawCode, sessionID, channel, operatorID, models.ReasonMalformed, err.Error())
	}

	result, err := s.validate(ctx, normalized, sessionID)
	if err != nil {
		s.logger.ErrorContext(ctx, "eligibility check failed",
			"request_id", requestcontext.RequestID(ctx),
			"session_id", sessionID.String(),
			"error", err,
		)
		return storeUnavailableOutcome()
	}

	switch result.Status {
	case models.EligibilityValid:
		return s.insert(ctx, models.AttendanceRecord{
			ID:             id.NewRecordID(),
			RegistrationID: result.Registration.ID,
			SessionID:      sessionID,
			RecordedAt:     s.now(ctx),
			Channel:        channel,
			OperatorID:     operatorID,
		})

	case models.EligibilityAlreadyAttended:
		// A repeated scan is informational, not suspicious. It is shown as a
		// warning and deliberately kept out of the failed-attempt trail.
		return &models.Outcome{
			Status: models.StatusAlreadyRecorded,
			Record: result.Existing,
		}

	case models.EligibilityNotFound:
		return s.reject(ctx, rawCode, sessionID, channel, operatorID, models.ReasonNotFound, result.Detail)

	case models.EligibilityIneligible:
		return s.reject(ctx, rawCode, sessionID, channel, operatorID, models.ReasonIneligible, result.Detail)

	case models.EligibilitySessionClosed:
		return s.reject(ctx, rawCode, sessionID, channel, operatorID, models.ReasonSessionClosed, result.Detail)

	default:
		s.logger.ErrorContext(ctx, "unexpected eligibility status", "status", string(result.Status))
		return storeUnavailableOutcome()
	}
}

// insert performs the single atomic ledger write. A concurrent duplicate is
// not an error: whoever lost the race reports the winning record.
func (s *Service) insert(ctx context.Context, record models.AttendanceRecord) *models.Outcome {
	res, err := s.ledger.InsertIfAbsent(ctx, record)
	if err != nil {
		s.logger.ErrorContext(ctx, "ledger write failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", record.RegistrationID.String(),
			"session_id", record.SessionID.String(),
			"error", err,
		)
		return storeUnavailableOutcome()
	}
	if res.Inserted {
		return &models.Outcome{Status: models.StatusRecorded, Record: res.Record}
	}
	return &models.Outcome{Status: models.StatusAlreadyRecorded, Record: res.Record}
}

// reject builds the rejection outcome and forwards the attempt to the auditor.
// The auditor call never blocks; losing an audit entry under pressure is
// acceptable, slowing down the entrance line is not.
func (s *Service) reject(
	ctx context.Context,
	rawCode string,
	sessionID id.SessionID,
	channel id.Channel,
	operatorID id.OperatorID,
	reason models.FailureReason,
	detail string,
) *models.Outcome {
	s.auditor.Record(ctx, models.FailedAttempt{
		Code:       rawCode,
		SessionID:  sessionID,
		Reason:     reason,
		Detail:     detail,
		Channel:    channel,
		OperatorID: operatorID,
		Terminal:   requestcontext.Terminal(ctx),
		OccurredAt: s.now(ctx),
	})
	return &models.Outcome{Status: models.StatusRejected, Reason: reason, Detail: detail}
}

// storeUnavailableOutcome is the one rejection that must never look like a
// scan problem: it is not audited and the HTTP layer maps it to 503.
func storeUnavailableOutcome() *models.Outcome {
	return &models.Outcome{
		Status: models.StatusRejected,
		Reason: models.ReasonStoreUnavailable,
		Detail: "attendance store is unavailable, try again",
	}
}
