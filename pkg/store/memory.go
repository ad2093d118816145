package store

import (
	"context"
	"sync"
)

// Memory keeps the save in memory, it does not survive a restart
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemory returns an empty Memory store
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the save
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return nil, ErrNotFound
	}

	return append([]byte{}, m.data...), nil
}

// Save stores a copy of the data
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	m.data = append([]byte{}, data...)
	m.mu.Unlock()

	return nil
}

// Delete forgets the save
func (m *Memory) Delete(_ context.Context) error {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()

	return nil
}
