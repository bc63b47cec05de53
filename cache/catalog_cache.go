// Package cache holds short-lived copies of derived catalogue collections.
package cache

import (
	"slices"
	"sync"
	"time"
)

const TTL = 5 * time.Minute

// Snapshot caches one whole collection for a TTL. Get hands out copies, so
// callers may modify what they receive.
type Snapshot[T any] struct {
	mu        sync.RWMutex
	data      []T
	fetchedAt time.Time
	valid     bool
	ttl       time.Duration
	now       func() time.Time
}

func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Snapshot[T]{ttl: ttl, now: time.Now}
}

func (s *Snapshot[T]) Get() ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.valid && s.now().Sub(s.fetchedAt) < s.ttl {
		return slices.Clone(s.data), true
	}
	return nil, false
}

func (s *Snapshot[T]) Set(data []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = slices.Clone(data)
	s.fetchedAt = s.now()
	s.valid = true
}

// Invalidate drops the entry. Call on any write that changes the collection.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.valid = false
}
