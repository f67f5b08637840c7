//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schema creates the tables the stores expect. Kept here so every
// integration suite runs against the real constraints, in particular the
// (registration_id, session_id) uniqueness the ledger relies on.
const schema = `
CREATE TABLE IF NOT EXISTS attendance_records (
    id              UUID PRIMARY KEY,
    registration_id UUID NOT NULL,
    session_id      UUID NOT NULL,
    recorded_at     TIMESTAMPTZ NOT NULL,
    channel         TEXT NOT NULL,
    operator_id     TEXT NOT NULL,
    note            TEXT NOT NULL DEFAULT '',
    override_reason TEXT NOT NULL DEFAULT '',
    CONSTRAINT attendance_records_pair_key UNIQUE (registration_id, session_id)
);

CREATE TABLE IF NOT EXISTS failed_attempts (
    id          UUID PRIMARY KEY,
    code        TEXT NOT NULL,
    session_id  UUID,
    reason      TEXT NOT NULL,
    detail      TEXT NOT NULL DEFAULT '',
    channel     TEXT NOT NULL,
    operator_id TEXT NOT NULL,
    terminal    TEXT NOT NULL DEFAULT '',
    occurred_at TIMESTAMPTZ NOT NULL,
    note        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS registrations (
    id                UUID PRIMARY KEY,
    event_id          UUID NOT NULL,
    category_id       TEXT NOT NULL DEFAULT '',
    participant_name  TEXT NOT NULL DEFAULT '',
    participant_email TEXT NOT NULL DEFAULT '',
    payment_status    TEXT NOT NULL,
    code              TEXT NOT NULL UNIQUE,
    revoked           BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS sessions (
    id        UUID PRIMARY KEY,
    event_id  UUID NOT NULL,
    name      TEXT NOT NULL,
    starts_at TIMESTAMPTZ NOT NULL,
    ends_at   TIMESTAMPTZ NOT NULL,
    capacity  INTEGER NOT NULL DEFAULT 0,
    active    BOOLEAN NOT NULL DEFAULT TRUE
);
`

// PostgresContainer wraps a testcontainers PostgreSQL instance with an open
// database handle.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	URL       string
}

// NewPostgresContainer starts a new PostgreSQL container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("gatecheck_test"),
		tcpostgres.WithUsername("gatecheck"),
		tcpostgres.WithPassword("gatecheck"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, DB: db, URL: url}
}

// TruncateTables clears the given tables between tests.
func (c *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := c.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(tables, ", ")))
	return err
}
