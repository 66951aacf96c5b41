// Package mem holds small in-process caches.
package mem

import (
	"sync"
	"time"
)

// Store is a TTL keyed cache safe for concurrent use.
type Store[V any] interface {
	Set(key string, value V)
	// Get returns the value for key if present and not expired.
	Get(key string) (V, bool)
	Delete(key string)
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(prefix string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLCache[V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]entry[V]
}

func NewTTLCache[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry[V]),
	}
}

func (s *TTLCache[V]) Set(key string, value V) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

func (s *TTLCache[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.Delete(key) // cleanup expired
		return zero, false
	}
	return e.value, true
}

func (s *TTLCache[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *TTLCache[V]) DeletePrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(s.data, k)
		}
	}
}
