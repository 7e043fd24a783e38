// Package slots defines the durable key/value contract used to persist
// collections, plus an in-memory implementation.
package slots

import (
	"context"
	"sync"
)

// Store reads and writes named slots. Load reports ok=false when the slot
// has never been written.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}

// Memory is a Store kept in process memory
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemory creates an empty in-memory slot store
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Load returns a copy of the slot contents
func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Save replaces the slot contents
func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = append([]byte(nil), data...)
	return nil
}

var _ Store = (*Memory)(nil)
