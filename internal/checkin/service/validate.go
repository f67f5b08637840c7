package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
)

// validate runs the eligibility checks for a normalized code against a target
// session. Check order is fixed so the same inputs always produce the same
// verdict: resolve code, payment/revocation, session window, existing record.
// Registration and session are fetched in parallel; the order applies to how
// the results are judged, not how they are fetched.
func (s *Service) validate(ctx context.Context, normalized string, sessionID id.SessionID) (models.EligibilityResult, error) {
	var (
		reg     *models.Registration
		session *models.Session
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.registrations.FindByCode(gctx, normalized)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return err
		}
		reg = found
		return nil
	})
	g.Go(func() error {
		found, err := s.sessions.FindByID(gctx, sessionID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return err
		}
		session = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.EligibilityResult{}, err
	}

	if reg == nil {
		return models.EligibilityResult{
			Status: models.EligibilityNotFound,
			Detail: "code does not match any registration",
		}, nil
	}

	if eligible, reason := reg.Eligible(); !eligible {
		return models.EligibilityResult{
			Status:       models.EligibilityIneligible,
			Registration: reg,
			Detail:       reason,
		}, nil
	}

	if session == nil {
		return models.EligibilityResult{
			Status:       models.EligibilitySessionClosed,
			Registration: reg,
			Detail:       "session not found",
		}, nil
	}
	now := s.now(ctx)
	if !session.AcceptsAt(now, s.policy.EarlyCheckinLead, s.policy.LateGracePeriod) {
		return models.EligibilityResult{
			Status:       models.EligibilitySessionClosed,
			Registration: reg,
			Detail:       sessionClosedDetail(*session, now),
		}, nil
	}

	existing, err := s.ledger.FindByPair(ctx, reg.ID, sessionID)
	switch {
	case err == nil:
		return models.EligibilityResult{
			Status:       models.EligibilityAlreadyAttended,
			Registration: reg,
			Existing:     existing,
		}, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return models.EligibilityResult{
			Status:       models.EligibilityValid,
			Registration: reg,
		}, nil
	default:
		return models.EligibilityResult{}, err
	}
}

func sessionClosedDetail(session models.Session, now time.Time) string {
	if !session.Active {
		return "session is closed"
	}
	if now.Before(session.StartsAt) {
		return "session has not opened for check-in yet"
	}
	return "session check-in window has ended"
}
