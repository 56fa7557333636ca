package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store. When limit is positive it keeps at
// most limit entries and evicts the oldest insert first.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	m     map[string]T
	order []string
	limit int
}

// NewMemoryStore returns a MemoryStore holding at most limit entries.
// A limit of zero or less means unbounded.
func NewMemoryStore[T any](limit int) *MemoryStore[T] {
	return &MemoryStore[T]{m: map[string]T{}, limit: limit}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[id]
	return v, ok, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.m[id]; !exists {
		s.order = append(s.order, id)
	}
	s.m[id] = v
	for s.limit > 0 && len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.m, oldest)
	}
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// NewID returns a random UUID string.
func (s *MemoryStore[T]) NewID() string {
	return uuid.NewString()
}
