package store

import (
	"sync"
)

// Memory keeps the best score in process memory
// Nothing survives a restart; useful for tests and kiosk setups
type Memory struct {
	mu   sync.Mutex
	best int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

func (m *Memory) Save(value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
