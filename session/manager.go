package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager owns the live sessions, keyed by session ID. Sessions are created
// on demand and never expire before the process does.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Store
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Store)}
}

// New mints a fresh session and returns its ID and store.
func (m *Manager) New() (string, *Store) {
	id := uuid.NewString()
	s := NewStore()
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return id, s
}

// Get returns the store for id, or nil if no such session exists.
func (m *Manager) Get(id string) *Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}
