package handler

import (
	"time"

	"gatecheck/internal/checkin/models"
)

// OutcomeResponse is the envelope every check-in operation answers with. The
// presentation field is the operator display contract: success, warning, or
// rejected, never anything ambiguous.
type OutcomeResponse struct {
	Status       string          `json:"status"`
	Presentation string          `json:"presentation"`
	Record       *RecordResponse `json:"record,omitempty"`
	Reason       string          `json:"reason,omitempty"`
	Detail       string          `json:"detail,omitempty"`
}

type RecordResponse struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	SessionID      string    `json:"session_id"`
	RecordedAt     time.Time `json:"recorded_at"`
	Channel        string    `json:"channel"`
	OperatorID     string    `json:"operator_id"`
	Note           string    `json:"note,omitempty"`
	OverrideReason string    `json:"override_reason,omitempty"`
}

type FailedAttemptResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Reason     string    `json:"reason"`
	Detail     string    `json:"detail,omitempty"`
	Channel    string    `json:"channel"`
	OperatorID string    `json:"operator_id,omitempty"`
	Terminal   string    `json:"terminal,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

type FailedAttemptListResponse struct {
	Attempts []FailedAttemptResponse `json:"attempts"`
}

func toOutcomeResponse(outcome *models.Outcome) OutcomeResponse {
	resp := OutcomeResponse{
		Status:       string(outcome.Status),
		Presentation: string(outcome.Presentation()),
		Reason:       string(outcome.Reason),
		Detail:       outcome.Detail,
	}
	if outcome.Record != nil {
		rec := toRecordResponse(*outcome.Record)
		resp.Record = &rec
	}
	return resp
}

func toRecordResponse(record models.AttendanceRecord) RecordResponse {
	return RecordResponse{
		ID:             record.ID.String(),
		RegistrationID: record.RegistrationID.String(),
		SessionID:      record.SessionID.String(),
		RecordedAt:     record.RecordedAt,
		Channel:        record.Channel.String(),
		OperatorID:     record.OperatorID.String(),
		Note:           record.Note,
		OverrideReason: record.OverrideReason,
	}
}

func toFailedAttemptResponse(attempt models.FailedAttempt) FailedAttemptResponse {
	return FailedAttemptResponse{
		ID:         attempt.ID.String(),
		Code:       attempt.Code,
		Reason:     string(attempt.Reason),
		Detail:     attempt.Detail,
		Channel:    attempt.Channel.String(),
		OperatorID: attempt.OperatorID.String(),
		Terminal:   attempt.Terminal,
		OccurredAt: attempt.OccurredAt,
	}
}
