package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is a process-local TTL cache. Expired entries are dropped lazily on
// read. A zero ttl stores the entry without expiry.
type Memory[V any] struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry[V]
	now     func() time.Time
}

func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{
		entries: make(map[string]memoryEntry[V]),
		now:     time.Now,
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false, nil
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return zero, false, nil
	}

	return e.value, true, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	e := memoryEntry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}
