package ledger

import (
	"context"
	"sort"
	"sync"

	"gatecheck/internal/checkin/models"
	"gatecheck/internal/checkin/ports"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
)

// InMemoryStore implements the attendance ledger in memory. The single mutex
// makes InsertIfAbsent atomic, matching the uniqueness guarantee the postgres
// store gets from its constraint. Used in dev mode and tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[pairKey]models.AttendanceRecord
}

type pairKey struct {
	registration id.RegistrationID
	session      id.SessionID
}

// NewInMemory creates an empty in-memory ledger.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[pairKey]models.AttendanceRecord)}
}

// InsertIfAbsent atomically records attendance unless the pair already has a
// record, in which case the existing record wins.
func (s *InMemoryStore) InsertIfAbsent(_ context.Context, record models.AttendanceRecord) (*ports.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{registration: record.RegistrationID, session: record.SessionID}
	if existing, ok := s.records[key]; ok {
		return &ports.InsertResult{Inserted: false, Record: &existing}, nil
	}
	s.records[key] = record
	return &ports.InsertResult{Inserted: true, Record: &record}, nil
}

// FindByPair returns the record for (registration, session), or
// sentinel.ErrNotFound.
func (s *InMemoryStore) FindByPair(_ context.Context, registrationID id.RegistrationID, sessionID id.SessionID) (*models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, ok := s.records[pairKey{registration: registrationID, session: sessionID}]; ok {
		return &record, nil
	}
	return nil, sentinel.ErrNotFound
}

// ListBySession returns the session's records ordered by recording time.
func (s *InMemoryStore) ListBySession(_ context.Context, sessionID id.SessionID) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AttendanceRecord
	for key, record := range s.records {
		if key.session == sessionID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}
