package quota

import (
	"context"
	"sync"
)

// Store is the persistence capability behind the message counter. It is
// injected so callers can fake it in tests.
type Store interface {
	Get(ctx context.Context, userID string) (int, error)
	Set(ctx context.Context, userID string, count int) error
}

// MemoryStore keeps counters in process memory. Counts reset with the
// process, which matches the free-tier semantics of the original
// browser-local counter.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[userID], nil
}

func (s *MemoryStore) Set(_ context.Context, userID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[userID] = count
	return nil
}
