//go:build integration

package ledger_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"gatecheck/internal/checkin/models"
	"gatecheck/internal/checkin/ports"
	"gatecheck/internal/checkin/store/ledger"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
	"gatecheck/pkg/testutil/containers"
)

type PostgresLedgerSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *ledger.PostgresStore
}

func TestPostgresLedgerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresLedgerSuite))
}

func (s *PostgresLedgerSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = ledger.NewPostgres(s.postgres.DB)
}

func (s *PostgresLedgerSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "attendance_records")
	s.Require().NoError(err)
}

func newTestRecord(registrationID id.RegistrationID, sessionID id.SessionID) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:             id.NewRecordID(),
		RegistrationID: registrationID,
		SessionID:      sessionID,
		RecordedAt:     time.Now().UTC().Truncate(time.Microsecond),
		Channel:        id.ChannelScanner,
		OperatorID:     "op-1",
	}
}

func (s *PostgresLedgerSuite) TestInsertIfAbsent() {
	ctx := context.Background()
	registrationID := id.RegistrationID(uuid.New())
	sessionID := id.SessionID(uuid.New())

	s.Run("first insert wins", func() {
		record := newTestRecord(registrationID, sessionID)
		res, err := s.store.InsertIfAbsent(ctx, record)
		s.Require().NoError(err)
		s.True(res.Inserted)
		s.Require().NotNil(res.Record)
		s.Equal(record.ID, res.Record.ID)
	})

	s.Run("second insert returns the winning record", func() {
		res, err := s.store.InsertIfAbsent(ctx, newTestRecord(registrationID, sessionID))
		s.Require().NoError(err)
		s.False(res.Inserted)
		s.Require().NotNil(res.Record)

		winner, err := s.store.FindByPair(ctx, registrationID, sessionID)
		s.Require().NoError(err)
		s.Equal(winner.ID, res.Record.ID)
	})

	s.Run("a different session inserts independently", func() {
		res, err := s.store.InsertIfAbsent(ctx, newTestRecord(registrationID, id.SessionID(uuid.New())))
		s.Require().NoError(err)
		s.True(res.Inserted)
	})
}

// TestConcurrentInsertIfAbsent verifies that racing inserts for one
// (registration, session) pair produce exactly one row and that every racer
// observes the same winner.
func (s *PostgresLedgerSuite) TestConcurrentInsertIfAbsent() {
	ctx := context.Background()
	registrationID := id.RegistrationID(uuid.New())
	sessionID := id.SessionID(uuid.New())
	const goroutines = 50

	var wg sync.WaitGroup
	var inserted atomic.Int32
	results := make([]*ports.InsertResult, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			res, err := s.store.InsertIfAbsent(ctx, newTestRecord(registrationID, sessionID))
			results[n], errs[n] = res, err
			if err == nil && res.Inserted {
				inserted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.Require().NoError(err)
	}
	s.Equal(int32(1), inserted.Load(), "the unique constraint must admit exactly one row")

	winner := results[0].Record.ID
	for _, res := range results {
		s.Require().NotNil(res.Record)
		s.Equal(winner, res.Record.ID)
	}

	records, err := s.store.ListBySession(ctx, sessionID)
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *PostgresLedgerSuite) TestFindByPair() {
	ctx := context.Background()
	registrationID := id.RegistrationID(uuid.New())
	sessionID := id.SessionID(uuid.New())

	s.Run("missing pair returns the sentinel", func() {
		_, err := s.store.FindByPair(ctx, registrationID, sessionID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("stored record round-trips", func() {
		record := newTestRecord(registrationID, sessionID)
		record.Note = "front gate"
		record.OverrideReason = "payment settled at the desk"
		_, err := s.store.InsertIfAbsent(ctx, record)
		s.Require().NoError(err)

		found, err := s.store.FindByPair(ctx, registrationID, sessionID)
		s.Require().NoError(err)
		s.Equal(record.ID, found.ID)
		s.Equal(record.Channel, found.Channel)
		s.Equal(record.OperatorID, found.OperatorID)
		s.Equal(record.Note, found.Note)
		s.Equal(record.OverrideReason, found.OverrideReason)
		s.WithinDuration(record.RecordedAt, found.RecordedAt, time.Second)
	})
}

func (s *PostgresLedgerSuite) TestListBySession() {
	ctx := context.Background()
	sessionID := id.SessionID(uuid.New())

	for i := 0; i < 3; i++ {
		_, err := s.store.InsertIfAbsent(ctx, newTestRecord(id.RegistrationID(uuid.New()), sessionID))
		s.Require().NoError(err)
	}
	_, err := s.store.InsertIfAbsent(ctx, newTestRecord(id.RegistrationID(uuid.New()), id.SessionID(uuid.New())))
	s.Require().NoError(err)

	records, err := s.store.ListBySession(ctx, sessionID)
	s.Require().NoError(err)
	s.Len(records, 3)
}
