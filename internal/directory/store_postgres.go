package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
)

// PostgresRegistrations reads the registrations table maintained by the
// registration subsystem.
//
// Expected schema:
//
//	CREATE TABLE registrations (
//	    id                UUID PRIMARY KEY,
//	    event_id          UUID NOT NULL,
//	    category_id       TEXT NOT NULL DEFAULT '',
//	    participant_name  TEXT NOT NULL DEFAULT '',
//	    participant_email TEXT NOT NULL DEFAULT '',
//	    payment_status    TEXT NOT NULL,
//	    code              TEXT NOT NULL UNIQUE,
//	    revoked           BOOLEAN NOT NULL DEFAULT FALSE
//	);
type PostgresRegistrations struct {
	db *sql.DB
}

func NewPostgresRegistrations(db *sql.DB) *PostgresRegistrations {
	return &PostgresRegistrations{db: db}
}

const registrationColumns = `id, event_id, category_id, participant_name, participant_email, payment_status, code, revoked`

func (s *PostgresRegistrations) FindByCode(ctx context.Context, code string) (*models.Registration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE code = $1`, code)
	return scanRegistration(row)
}

func (s *PostgresRegistrations) FindByID(ctx context.Context, registrationID id.RegistrationID) (*models.Registration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, uuid.UUID(registrationID))
	return scanRegistration(row)
}

func scanRegistration(row *sql.Row) (*models.Registration, error) {
	var (
		reg       models.Registration
		regID     uuid.UUID
		eventID   uuid.UUID
		payStatus string
	)
	err := row.Scan(
		&regID,
		&eventID,
		&reg.CategoryID,
		&reg.ParticipantName,
		&reg.ParticipantEmail,
		&payStatus,
		&reg.Code,
		&reg.Revoked,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	reg.ID = id.RegistrationID(regID)
	reg.EventID = id.EventID(eventID)
	reg.PaymentStatus = models.PaymentStatus(payStatus)
	return &reg, nil
}

// PostgresSessions reads the sessions table maintained by event setup.
type PostgresSessions struct {
	db *sql.DB
}

func NewPostgresSessions(db *sql.DB) *PostgresSessions {
	return &PostgresSessions{db: db}
}

func (s *PostgresSessions) FindByID(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, event_id, name, starts_at, ends_at, capacity, active
		 FROM sessions WHERE id = $1`, uuid.UUID(sessionID))

	var (
		session models.Session
		sid     uuid.UUID
		eventID uuid.UUID
	)
	err := row.Scan(&sid, &eventID, &session.Name, &session.StartsAt, &session.EndsAt, &session.Capacity, &session.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	session.ID = id.SessionID(sid)
	session.EventID = id.EventID(eventID)
	return &session, nil
}
