package source

import (
	"context"
	"sync"
)

// Memory is an in-memory Source implementation for testing.
// It stores assets in memory without any filesystem dependency.
// Thread-safe for concurrent reads and writes.
type Memory struct {
	mu     sync.RWMutex
	assets map[string][]byte
}

// NewMemory creates a new in-memory source.
func NewMemory() *Memory {
	return &Memory{
		assets: make(map[string][]byte),
	}
}

// Put stores an asset under the given name.
func (m *Memory) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	m.assets[name] = copied
}

// Delete removes an asset.
func (m *Memory) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.assets, name)
}

// Exists reports whether the named asset was stored.
func (m *Memory) Exists(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.assets[name]
	return ok, nil
}

// ReadFile returns the full contents of the named asset.
func (m *Memory) ReadFile(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.assets[name]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}
