// Package channel adapts physical input paths to the check-in service. Each
// adapter massages its device's raw delivery into exactly one submission per
// presented code; all interpretation of the code itself happens downstream.
package channel

import (
	"context"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// Submitter is the single entry point adapters feed into. Implemented by the
// check-in service.
type Submitter interface {
	RecordAttendance(ctx context.Context, rawCode string, sessionID id.SessionID, channel id.Channel, operatorID id.OperatorID) (*models.Outcome, error)
}

// Manual submits codes typed by a staff member. The text goes through the
// same normalization and validation as any scan; the only difference is the
// channel label on the resulting records.
type Manual struct {
	submitter  Submitter
	sessionID  id.SessionID
	operatorID id.OperatorID
}

func NewManual(submitter Submitter, sessionID id.SessionID, operatorID id.OperatorID) *Manual {
	return &Manual{submitter: submitter, sessionID: sessionID, operatorID: operatorID}
}

func (m *Manual) Submit(ctx context.Context, text string) (*models.Outcome, error) {
	return m.submitter.RecordAttendance(ctx, text, m.sessionID, id.ChannelManual, m.operatorID)
}
