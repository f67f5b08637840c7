package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// blockingStore lets tests control when Append completes.
type blockingStore struct {
	mu       sync.Mutex
	attempts []models.FailedAttempt
	gate     chan struct{}
	fail     bool
}

func (s *blockingStore) Append(_ context.Context, attempt models.FailedAttempt) error {
	if s.gate != nil {
		<-s.gate
	}
	if s.fail {
		return errors.New("disk full")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *blockingStore) ListBySession(_ context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FailedAttempt
	for _, a := range s.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *blockingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attempts)
}

func newAttempt(reason models.FailureReason) models.FailedAttempt {
	return models.FailedAttempt{
		Code:       "XYZ999",
		SessionID:  id.SessionID(uuid.New()),
		Reason:     reason,
		Channel:    id.ChannelManual,
		OperatorID: id.OperatorID("op-1"),
	}
}

func TestAuditor_PersistsAsync(t *testing.T) {
	store := &blockingStore{}
	auditor := New(store, discardLogger(), 16)
	defer auditor.Close()

	auditor.Record(context.Background(), newAttempt(models.ReasonNotFound))

	require.Eventually(t, func() bool { return store.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestAuditor_StampsIDAndTimestamp(t *testing.T) {
	store := &blockingStore{}
	auditor := New(store, discardLogger(), 16)

	auditor.Record(context.Background(), newAttempt(models.ReasonMalformed))
	auditor.Close()

	require.Len(t, store.attempts, 1)
	assert.False(t, store.attempts[0].ID.IsNil())
	assert.False(t, store.attempts[0].OccurredAt.IsZero())
}

func TestAuditor_DrainsOnClose(t *testing.T) {
	store := &blockingStore{}
	auditor := New(store, discardLogger(), 100)

	for range 10 {
		auditor.Record(context.Background(), newAttempt(models.ReasonNotFound))
	}

	// Close should drain all buffered attempts
	auditor.Close()

	assert.Equal(t, 10, store.count(), "all attempts should be drained on close")
}

func TestAuditor_RecordNeverBlocksWhenFull(t *testing.T) {
	gate := make(chan struct{})
	store := &blockingStore{gate: gate}
	auditor := New(store, discardLogger(), 1)

	// First attempt occupies the worker, second fills the buffer.
	auditor.Record(context.Background(), newAttempt(models.ReasonNotFound))
	auditor.Record(context.Background(), newAttempt(models.ReasonNotFound))

	done := make(chan struct{})
	go func() {
		// Buffer is full; this must drop, not block.
		auditor.Record(context.Background(), newAttempt(models.ReasonNotFound))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}

	close(gate)
	auditor.Close()
}

func TestAuditor_StoreFailureIsContained(t *testing.T) {
	store := &blockingStore{fail: true}
	auditor := New(store, discardLogger(), 16)

	// Must not panic or surface anything to the caller.
	auditor.Record(context.Background(), newAttempt(models.ReasonIneligible))
	auditor.Close()

	assert.Equal(t, 0, store.count())
}

func TestAuditor_RecordAfterCloseIsDropped(t *testing.T) {
	store := &blockingStore{}
	auditor := New(store, discardLogger(), 16)
	auditor.Close()

	// Must not panic on the closed inbox.
	auditor.Record(context.Background(), newAttempt(models.ReasonNotFound))
	assert.Equal(t, 0, store.count())
}
