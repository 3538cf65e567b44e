// Package testkit provides deterministic synthetic rosters and in-memory
// collaborators so the engines and the UI can run without an import file or
// a database.
package testkit

import (
	"context"
	"sync"

	"murshid/domain/core"
	"murshid/domain/filter"
	"murshid/domain/record"
)

// MemoryStateStore is an in-memory FilterStateStore for tests and for
// deployments without a database.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]*filter.State
}

// NewMemoryStateStore creates an empty in-memory store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]*filter.State)}
}

// stateKey composes the map key from the session and the view name
func stateKey(session core.SessionID, name string) string {
	return session.String() + "|" + name
}

// Get returns the session's stored snapshot, or a fresh empty state when
// absent or persisted under an older version.
func (m *MemoryStateStore) Get(ctx context.Context, session core.SessionID, name string) (*filter.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.states[stateKey(session, name)]
	if !ok || !state.Compatible() {
		return filter.NewState(name), nil
	}
	copied := *state
	copied.Criteria = state.Criteria.Clone()
	copied.Sort = state.Sort.Clone()
	return &copied, nil
}

// Save stores a copy of the snapshot under the session
func (m *MemoryStateStore) Save(ctx context.Context, session core.SessionID, state *filter.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *state
	copied.Version = filter.StateVersion
	copied.UpdatedAt = core.Now()
	copied.Criteria = state.Criteria.Clone()
	copied.Sort = state.Sort.Clone()
	m.states[stateKey(session, state.Name)] = &copied
	return nil
}

// Clear removes the session's snapshot for a view name
func (m *MemoryStateStore) Clear(ctx context.Context, session core.SessionID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, stateKey(session, name))
	return nil
}

// StaticRoster is a RosterSource over a fixed record slice
type StaticRoster struct {
	students []record.Student
}

// NewStaticRoster wraps a fixed roster
func NewStaticRoster(students []record.Student) *StaticRoster {
	return &StaticRoster{students: students}
}

// Load returns a copy of the roster slice
func (r *StaticRoster) Load(ctx context.Context) ([]record.Student, error) {
	out := make([]record.Student, len(r.students))
	copy(out, r.students)
	return out, nil
}
