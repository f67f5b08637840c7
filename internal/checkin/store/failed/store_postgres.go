package failed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// PostgresStore persists failed attempts in PostgreSQL.
//
//	CREATE TABLE failed_attempts (
//	    id          UUID PRIMARY KEY,
//	    code        TEXT NOT NULL,
//	    session_id  UUID,
//	    reason      TEXT NOT NULL,
//	    detail      TEXT NOT NULL DEFAULT '',
//	    channel     TEXT NOT NULL,
//	    operator_id TEXT NOT NULL,
//	    terminal    TEXT NOT NULL DEFAULT '',
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    note        TEXT NOT NULL DEFAULT ''
//	);
//
// Append-only: there is no update or delete path.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed failed-attempt store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append records a failed attempt.
func (s *PostgresStore) Append(ctx context.Context, attempt models.FailedAttempt) error {
	query := `
		INSERT INTO failed_attempts (id, code, session_id, reason, detail, channel, operator_id, terminal, occurred_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	var sessionID any
	if !attempt.SessionID.IsNil() {
		sessionID = uuid.UUID(attempt.SessionID)
	}
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(attempt.ID),
		attempt.Code,
		sessionID,
		string(attempt.Reason),
		attempt.Detail,
		string(attempt.Channel),
		string(attempt.OperatorID),
		attempt.Terminal,
		attempt.OccurredAt,
		attempt.Note,
	)
	if err != nil {
		return fmt.Errorf("append failed attempt: %w", err)
	}
	return nil
}

// ListBySession returns attempts against the given session in occurrence order.
func (s *PostgresStore) ListBySession(ctx context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error) {
	query := `
		SELECT id, code, session_id, reason, detail, channel, operator_id, terminal, occurred_at, note
		FROM failed_attempts
		WHERE session_id = $1
		ORDER BY occurred_at
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(sessionID))
	if err != nil {
		return nil, fmt.Errorf("list failed attempts: %w", err)
	}
	defer rows.Close()

	var out []models.FailedAttempt
	for rows.Next() {
		var (
			attempt    models.FailedAttempt
			attemptID  uuid.UUID
			sessID     uuid.NullUUID
			reason     string
			channel    string
			operatorID string
		)
		err := rows.Scan(
			&attemptID,
			&attempt.Code,
			&sessID,
			&reason,
			&attempt.Detail,
			&channel,
			&operatorID,
			&attempt.Terminal,
			&attempt.OccurredAt,
			&attempt.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("list failed attempts: %w", err)
		}
		attempt.ID = id.AttemptID(attemptID)
		if sessID.Valid {
			attempt.SessionID = id.SessionID(sessID.UUID)
		}
		attempt.Reason = models.FailureReason(reason)
		attempt.Channel = id.Channel(channel)
		attempt.OperatorID = id.OperatorID(operatorID)
		out = append(out, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list failed attempts: %w", err)
	}
	return out, nil
}
