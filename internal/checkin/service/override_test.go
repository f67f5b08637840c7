package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	dErrors "gatecheck/pkg/domain-errors"
)

func (s *CheckinServiceSuite) TestOverrideRecord() {
	ctx := context.Background()

	s.Run("missing justification is rejected before any store access", func() {
		svc := New(s.dir, s.dir.Sessions(), failingLedger{}, s.auditor, slog.New(slog.DiscardHandler))
		_, err := svc.OverrideRecord(ctx, s.revoked.ID, s.sessionID, "sup-1", "   ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("missing operator is rejected", func() {
		_, err := s.service.OverrideRecord(ctx, s.revoked.ID, s.sessionID, "", "badge reprint")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("unknown registration is not found", func() {
		_, err := s.service.OverrideRecord(ctx, id.RegistrationID(uuid.New()), s.sessionID, "sup-1", "badge reprint")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("override bypasses eligibility and keeps the justification", func() {
		outcome, err := s.service.OverrideRecord(ctx, s.revoked.ID, s.sessionID, "sup-1", "payment settled at the desk")
		s.Require().NoError(err)
		s.Equal(models.StatusRecorded, outcome.Status)
		s.Require().NotNil(outcome.Record)
		s.Equal("payment settled at the desk", outcome.Record.OverrideReason)
		s.Equal(id.ChannelManual, outcome.Record.Channel)
		s.Equal(id.OperatorID("sup-1"), outcome.Record.OperatorID)

		stored, err := s.ledger.FindByPair(ctx, s.revoked.ID, s.sessionID)
		s.Require().NoError(err)
		s.Equal("payment settled at the desk", stored.OverrideReason)
	})

	s.Run("override on an attended registration reports the existing record", func() {
		first, err := s.service.RecordAttendance(ctx, "OK-CODE-1", s.sessionID, id.ChannelScanner, "op-1")
		s.Require().NoError(err)
		s.Require().Equal(models.StatusRecorded, first.Status)

		outcome, err := s.service.OverrideRecord(ctx, s.approved.ID, s.sessionID, "sup-1", "double-checking")
		s.Require().NoError(err)
		s.Equal(models.StatusAlreadyRecorded, outcome.Status)
		s.Require().NotNil(outcome.Record)
		s.Equal(first.Record.ID, outcome.Record.ID)
		s.Empty(outcome.Record.OverrideReason, "the winning record stays untouched")
	})

	s.Run("overrides never produce failed-attempt entries", func() {
		_, err := s.service.OverrideRecord(ctx, s.pending.ID, s.sessionID, "sup-1", "vip guest")
		s.Require().NoError(err)
		s.Empty(s.auditor.all())
	})
}
