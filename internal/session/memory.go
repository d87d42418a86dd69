package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process and forgets them after ttl of
// inactivity.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*State
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: map[string]*State{}}
}

func (m *MemoryStore) Get(_ context.Context, id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.live(id)
	if !ok {
		return State{}, nil
	}
	return st.clone(), nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fn func(*State)) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.live(id)
	if !ok {
		st = &State{}
		m.sessions[id] = st
	}
	fn(st)
	st.UpdatedAt = m.now()
	return st.clone(), nil
}

// Sweep drops expired sessions and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, st := range m.sessions {
		if m.expired(st) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// live must be called with mu held.
func (m *MemoryStore) live(id string) (*State, bool) {
	st, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.expired(st) {
		delete(m.sessions, id)
		return nil, false
	}
	return st, true
}

func (m *MemoryStore) expired(st *State) bool {
	return m.ttl > 0 && m.now().Sub(st.UpdatedAt) > m.ttl
}
