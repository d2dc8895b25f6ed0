package cache

import "sync"

// Memory is an in-memory store, used as the default and for testing.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get retrieves a rendered result by expression.
func (m *Memory) Get(expr string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rendered, ok := m.data[expr]
	return rendered, ok, nil
}

// Put stores a rendered result.
func (m *Memory) Put(expr, rendered string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[expr] = rendered
	return nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
