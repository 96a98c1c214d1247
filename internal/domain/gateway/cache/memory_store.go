package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is a stored value with its expiry timestamp
type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is a process-local Store for standalone and test use. Entries
// are dropped lazily on read once their expiry passes.
type MemoryStore struct {
	mutex sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

// Exists reports whether a live entry is present for key
func (s *MemoryStore) Exists(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// Get returns the value for key and whether a live entry was found
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mutex.RLock()
	entry, found := s.items[key]
	s.mutex.RUnlock()

	if !found {
		return "", false
	}

	if s.now().After(entry.expiresAt) {
		s.mutex.Lock()
		delete(s.items, key)
		s.mutex.Unlock()
		return "", false
	}

	return entry.value, true
}

// SetWithTTL stores value under key, replacing any previous entry
func (s *MemoryStore) SetWithTTL(_ context.Context, key string, value string, ttl time.Duration) {
	s.mutex.Lock()
	s.items[key] = memoryEntry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
	s.mutex.Unlock()
}
