package failed

import (
	"context"
	"sync"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// InMemoryStore keeps failed attempts in memory, append-only. Used in dev
// mode and tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	attempts []models.FailedAttempt
}

// NewInMemory creates an empty in-memory failed-attempt store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

// Append records a failed attempt. Entries are never updated or deleted.
func (s *InMemoryStore) Append(_ context.Context, attempt models.FailedAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	return nil
}

// ListBySession returns attempts against the given session in append order.
func (s *InMemoryStore) ListBySession(_ context.Context, sessionID id.SessionID) ([]models.FailedAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.FailedAttempt
	for _, attempt := range s.attempts {
		if attempt.SessionID == sessionID {
			out = append(out, attempt)
		}
	}
	return out, nil
}

// ListAll returns every attempt in append order (audit screens only).
func (s *InMemoryStore) ListAll(_ context.Context) ([]models.FailedAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FailedAttempt{}, s.attempts...), nil
}
