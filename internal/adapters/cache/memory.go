// Package cache implements the process-wide artifact index cache.
package cache

import (
	"sync"

	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.IndexCache = (*Memory)(nil)

// Memory is an in-memory, unbounded IndexCache. Entries live for the process
// lifetime; nothing is ever evicted. Absent results (nil indexes for
// unreadable artifacts) are cached like any other value, so a failed artifact
// stays failed until the process is restarted.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*domain.TypeIndex
	group   singleflight.Group
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*domain.TypeIndex),
	}
}

// GetOrCompute returns the cached index for key, computing and storing it on
// first access. The compute step runs at most once per key even under
// concurrent callers; errors from compute are not cached and propagate
// wrapped as a cache-layer failure.
func (m *Memory) GetOrCompute(key string, compute func() (*domain.TypeIndex, error)) (*domain.TypeIndex, error) {
	m.mu.RLock()
	idx, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return idx, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// Re-check under the flight: a previous flight may have stored the
		// entry between our read and this call.
		m.mu.RLock()
		idx, ok := m.entries[key]
		m.mu.RUnlock()
		if ok {
			return idx, nil
		}

		idx, err := compute()
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.entries[key] = idx
		m.mu.Unlock()
		return idx, nil
	})
	if err != nil {
		return nil, zerr.Wrap(domain.ErrCacheCompute, err.Error())
	}
	return v.(*domain.TypeIndex), nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
