package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"gatecheck/internal/checkin/models"
	"gatecheck/internal/checkin/ports"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
)

// PostgresStore persists attendance records in PostgreSQL. The uniqueness
// invariant lives in the schema, not here:
//
//	CREATE TABLE attendance_records (
//	    id              UUID PRIMARY KEY,
//	    registration_id UUID NOT NULL,
//	    session_id      UUID NOT NULL,
//	    recorded_at     TIMESTAMPTZ NOT NULL,
//	    channel         TEXT NOT NULL,
//	    operator_id     TEXT NOT NULL,
//	    note            TEXT NOT NULL DEFAULT '',
//	    override_reason TEXT NOT NULL DEFAULT '',
//	    CONSTRAINT attendance_records_pair_key UNIQUE (registration_id, session_id)
//	);
//
// This store is pure I/O; eligibility and outcome mapping belong in the service.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed attendance ledger.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InsertIfAbsent atomically inserts the record unless the (registration,
// session) pair already exists. A single INSERT ... ON CONFLICT DO NOTHING
// decides the race in the database; the losing side re-reads the winner.
// Check-then-insert in application code would race under concurrent staff
// scanning the same badge at two terminals.
func (s *PostgresStore) InsertIfAbsent(ctx context.Context, record models.AttendanceRecord) (*ports.InsertResult, error) {
	query := `
		INSERT INTO attendance_records (id, registration_id, session_id, recorded_at, channel, operator_id, note, override_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (registration_id, session_id) DO NOTHING
	`
	res, err := s.db.ExecContext(ctx, query,
		uuid.UUID(record.ID),
		uuid.UUID(record.RegistrationID),
		uuid.UUID(record.SessionID),
		record.RecordedAt,
		string(record.Channel),
		string(record.OperatorID),
		record.Note,
		record.OverrideReason,
	)
	if err != nil {
		// A serialization-level unique violation can still surface instead of
		// the DO NOTHING path; treat it as losing the race.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return s.lookupWinner(ctx, record.RegistrationID, record.SessionID)
		}
		return nil, fmt.Errorf("insert attendance record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("insert attendance record: %w", err)
	}
	if affected == 1 {
		return &ports.InsertResult{Inserted: true, Record: &record}, nil
	}
	return s.lookupWinner(ctx, record.RegistrationID, record.SessionID)
}

func (s *PostgresStore) lookupWinner(ctx context.Context, registrationID id.RegistrationID, sessionID id.SessionID) (*ports.InsertResult, error) {
	winner, err := s.FindByPair(ctx, registrationID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("lookup winning attendance record: %w", err)
	}
	return &ports.InsertResult{Inserted: false, Record: winner}, nil
}

// FindByPair returns the record for (registration, session), or
// sentinel.ErrNotFound.
func (s *PostgresStore) FindByPair(ctx context.Context, registrationID id.RegistrationID, sessionID id.SessionID) (*models.AttendanceRecord, error) {
	query := `
		SELECT id, registration_id, session_id, recorded_at, channel, operator_id, note, override_reason
		FROM attendance_records
		WHERE registration_id = $1 AND session_id = $2
	`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, uuid.UUID(registrationID), uuid.UUID(sessionID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find attendance record: %w", err)
	}
	return record, nil
}

// ListBySession returns the session's records ordered by recording time.
func (s *PostgresStore) ListBySession(ctx context.Context, sessionID id.SessionID) ([]models.AttendanceRecord, error) {
	query := `
		SELECT id, registration_id, session_id, recorded_at, channel, operator_id, note, override_reason
		FROM attendance_records
		WHERE session_id = $1
		ORDER BY recorded_at
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(sessionID))
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var out []models.AttendanceRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list attendance records: %w", err)
		}
		out = append(out, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.AttendanceRecord, error) {
	var (
		record         models.AttendanceRecord
		recordID       uuid.UUID
		registrationID uuid.UUID
		sessionID      uuid.UUID
		channel        string
		operatorID     string
	)
	err := row.Scan(
		&recordID,
		&registrationID,
		&sessionID,
		&record.RecordedAt,
		&channel,
		&operatorID,
		&record.Note,
		&record.OverrideReason,
	)
	if err != nil {
		return nil, err
	}
	record.ID = id.RecordID(recordID)
	record.RegistrationID = id.RegistrationID(registrationID)
	record.SessionID = id.SessionID(sessionID)
	record.Channel = id.Channel(channel)
	record.OperatorID = id.OperatorID(operatorID)
	return &record, nil
}
