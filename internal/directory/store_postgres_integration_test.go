//go:build integration

package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"gatecheck/internal/checkin/models"
	"gatecheck/internal/directory"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
	"gatecheck/pkg/testutil/containers"
)

type PostgresDirectorySuite struct {
	suite.Suite
	postgres      *containers.PostgresContainer
	registrations *directory.PostgresRegistrations
	sessions      *directory.PostgresSessions
}

func TestPostgresDirectorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresDirectorySuite))
}

func (s *PostgresDirectorySuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.registrations = directory.NewPostgresRegistrations(s.postgres.DB)
	s.sessions = directory.NewPostgresSessions(s.postgres.DB)
}

func (s *PostgresDirectorySuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "registrations", "sessions")
	s.Require().NoError(err)
}

func (s *PostgresDirectorySuite) insertRegistration(reg models.Registration) {
	s.T().Helper()
	_, err := s.postgres.DB.ExecContext(context.Background(), `
		INSERT INTO registrations (id, event_id, category_id, participant_name, participant_email, payment_status, code, revoked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.UUID(reg.ID),
		uuid.UUID(reg.EventID),
		reg.CategoryID,
		reg.ParticipantName,
		reg.ParticipantEmail,
		string(reg.PaymentStatus),
		reg.Code,
		reg.Revoked,
	)
	s.Require().NoError(err)
}

func (s *PostgresDirectorySuite) insertSession(session models.Session) {
	s.T().Helper()
	_, err := s.postgres.DB.ExecContext(context.Background(), `
		INSERT INTO sessions (id, event_id, name, starts_at, ends_at, capacity, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.UUID(session.ID),
		uuid.UUID(session.EventID),
		session.Name,
		session.StartsAt,
		session.EndsAt,
		session.Capacity,
		session.Active,
	)
	s.Require().NoError(err)
}

func (s *PostgresDirectorySuite) TestFindRegistration() {
	ctx := context.Background()
	reg := models.Registration{
		ID:               id.RegistrationID(uuid.New()),
		EventID:          id.EventID(uuid.New()),
		CategoryID:       "general",
		ParticipantName:  "Ada Byron",
		ParticipantEmail: "ada@example.com",
		PaymentStatus:    models.PaymentApproved,
		Code:             "REG-ALPHA-001",
	}
	s.insertRegistration(reg)

	s.Run("by code", func() {
		found, err := s.registrations.FindByCode(ctx, "REG-ALPHA-001")
		s.Require().NoError(err)
		s.Equal(reg.ID, found.ID)
		s.Equal(reg.ParticipantName, found.ParticipantName)
		s.Equal(models.PaymentApproved, found.PaymentStatus)
		s.False(found.Revoked)
	})

	s.Run("by id", func() {
		found, err := s.registrations.FindByID(ctx, reg.ID)
		s.Require().NoError(err)
		s.Equal(reg.Code, found.Code)
	})

	s.Run("unknown code returns the sentinel", func() {
		_, err := s.registrations.FindByCode(ctx, "NO-SUCH-CODE")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("unknown id returns the sentinel", func() {
		_, err := s.registrations.FindByID(ctx, id.RegistrationID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostgresDirectorySuite) TestRevokedAndPendingRoundTrip() {
	ctx := context.Background()
	s.insertRegistration(models.Registration{
		ID:            id.RegistrationID(uuid.New()),
		EventID:       id.EventID(uuid.New()),
		PaymentStatus: models.PaymentPending,
		Code:          "REG-BRAVO-002",
	})
	s.insertRegistration(models.Registration{
		ID:            id.RegistrationID(uuid.New()),
		EventID:       id.EventID(uuid.New()),
		PaymentStatus: models.PaymentApproved,
		Code:          "REG-CHARLIE-003",
		Revoked:       true,
	})

	pending, err := s.registrations.FindByCode(ctx, "REG-BRAVO-002")
	s.Require().NoError(err)
	eligible, reason := pending.Eligible()
	s.False(eligible)
	s.Equal("payment pending", reason)

	revoked, err := s.registrations.FindByCode(ctx, "REG-CHARLIE-003")
	s.Require().NoError(err)
	s.True(revoked.Revoked)
}

func (s *PostgresDirectorySuite) TestFindSession() {
	ctx := context.Background()
	session := models.Session{
		ID:       id.SessionID(uuid.New()),
		EventID:  id.EventID(uuid.New()),
		Name:     "Opening Keynote",
		StartsAt: time.Now().UTC().Truncate(time.Microsecond),
		EndsAt:   time.Now().UTC().Add(2 * time.Hour).Truncate(time.Microsecond),
		Capacity: 300,
		Active:   true,
	}
	s.insertSession(session)

	s.Run("found", func() {
		found, err := s.sessions.FindByID(ctx, session.ID)
		s.Require().NoError(err)
		s.Equal(session.Name, found.Name)
		s.Equal(session.Capacity, found.Capacity)
		s.True(found.Active)
		s.WithinDuration(session.StartsAt, found.StartsAt, time.Second)
		s.WithinDuration(session.EndsAt, found.EndsAt, time.Second)
	})

	s.Run("unknown id returns the sentinel", func() {
		_, err := s.sessions.FindByID(ctx, id.SessionID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
