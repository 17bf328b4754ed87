package credstore

import "sync"

// Memory is an in-process Store. It backs tests and the DAMA_NO_KEYRING
// escape hatch; it does not survive process restarts.
type Memory struct {
	mu    sync.RWMutex
	token string
	has   bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Get returns the stored token, if any.
func (m *Memory) Get() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.has
}

// Set overwrites the stored token.
func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.has = true
	return nil
}

// Clear removes the stored token.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.has = false
	return nil
}
