package session

import (
	"sync"
	"time"
)

// IdempotencyEntry is a cached response for a processed idempotency key.
type IdempotencyEntry struct {
	StatusCode int
	Body       []byte
	CreatedAt  time.Time
}

// IdempotencyStore remembers responses to submit requests keyed by the
// client's Idempotency-Key header, so a double-clicked "Enter" does not
// record the order twice. Entries expire after ttl.
type IdempotencyStore struct {
	mu      sync.RWMutex
	entries map[string]*IdempotencyEntry
	ttl     time.Duration
}

// NewIdempotencyStore creates a replay cache with the given entry lifetime.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		entries: make(map[string]*IdempotencyEntry),
		ttl:     ttl,
	}
}

// Get returns the cached response for key, if present and fresh.
func (s *IdempotencyStore) Get(key string) (*IdempotencyEntry, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Since(e.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return e, true
}

// Set caches a response for key. Only successful responses should be
// cached; failures must stay retryable.
func (s *IdempotencyStore) Set(key string, statusCode int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &IdempotencyEntry{
		StatusCode: statusCode,
		Body:       append([]byte(nil), body...),
		CreatedAt:  time.Now(),
	}

	// Opportunistic cleanup keeps the map from growing over a long fair day.
	cutoff := time.Now().Add(-s.ttl)
	for k, e := range s.entries {
		if e.CreatedAt.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}
