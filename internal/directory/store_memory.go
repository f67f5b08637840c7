// Package directory provides read access to registrations and sessions. Both
// are owned by external subsystems; everything here is a read model keyed for
// the check-in flow (code for registrations, id for sessions). Reads may be
// stale relative to concurrent staff edits, which is accepted.
package directory

import (
	"context"
	"sync"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	"gatecheck/pkg/platform/sentinel"
)

// InMemoryDirectory holds registrations and sessions in process memory. Used
// in tests and for demo boot; seeded via Put methods.
type InMemoryDirectory struct {
	mu            sync.RWMutex
	byCode        map[string]models.Registration
	registrations map[id.RegistrationID]models.Registration
	sessions      map[id.SessionID]models.Session
}

func NewInMemory() *InMemoryDirectory {
	return &InMemoryDirectory{
		byCode:        make(map[string]models.Registration),
		registrations: make(map[id.RegistrationID]models.Registration),
		sessions:      make(map[id.SessionID]models.Session),
	}
}

// PutRegistration stores or replaces a registration. The code is expected in
// normalized form; lookups do no normalization of their own.
func (d *InMemoryDirectory) PutRegistration(reg models.Registration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.registrations[reg.ID]; ok && prev.Code != reg.Code {
		delete(d.byCode, prev.Code)
	}
	d.byCode[reg.Code] = reg
	d.registrations[reg.ID] = reg
}

func (d *InMemoryDirectory) PutSession(session models.Session) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[session.ID] = session
}

func (d *InMemoryDirectory) FindByCode(_ context.Context, code string) (*models.Registration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	reg, ok := d.byCode[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := reg
	return &out, nil
}

func (d *InMemoryDirectory) FindByID(_ context.Context, registrationID id.RegistrationID) (*models.Registration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	reg, ok := d.registrations[registrationID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := reg
	return &out, nil
}

func (d *InMemoryDirectory) FindSessionByID(_ context.Context, sessionID id.SessionID) (*models.Session, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	session, ok := d.sessions[sessionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := session
	return &out, nil
}

// Sessions exposes the session half of the directory under the interface the
// check-in service consumes.
func (d *InMemoryDirectory) Sessions() *MemorySessions { return &MemorySessions{dir: d} }

// MemorySessions adapts InMemoryDirectory to the session lookup interface.
type MemorySessions struct {
	dir *InMemoryDirectory
}

func (m *MemorySessions) FindByID(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	return m.dir.FindSessionByID(ctx, sessionID)
}
