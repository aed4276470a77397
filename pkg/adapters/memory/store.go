package memory

import (
	"context"
	"sync"

	"github.com/openburn/motordoc/pkg/domain"
)

// Store implements ports.DesignStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Design
	mu   sync.RWMutex
}

// NewStore creates a new in-memory design store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Design),
	}
}

// Save persists the design in memory.
func (s *Store) Save(ctx context.Context, path string, design *domain.Design) error {
	// Clone to ensure isolation, similar to serialization
	copied := design.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = copied
	return nil
}

// Load retrieves the design from memory.
func (s *Store) Load(ctx context.Context, path string) (*domain.Design, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	design, ok := s.data[path]
	if !ok {
		return nil, domain.ErrDesignNotFound
	}

	// Copy on read so callers can't mutate store state through the pointer
	return design.Clone(), nil
}
