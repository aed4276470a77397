package memory

import (
	"context"
	"sync"

	"github.com/openburn/motordoc/pkg/domain"
)

// LibraryStore implements ports.LibraryStore in memory.
// Safe for concurrent use.
type LibraryStore struct {
	entries []domain.Propellant
	mu      sync.RWMutex
}

// NewLibraryStore creates an empty in-memory library store, optionally
// seeded with initial entries.
func NewLibraryStore(seed ...domain.Propellant) *LibraryStore {
	s := &LibraryStore{}
	if len(seed) > 0 {
		s.entries = copyEntries(seed)
	}
	return s
}

// Load returns a copy of the stored collection.
func (s *LibraryStore) Load(ctx context.Context) ([]domain.Propellant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEntries(s.entries), nil
}

// Persist replaces the stored collection.
func (s *LibraryStore) Persist(ctx context.Context, propellants []domain.Propellant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copyEntries(propellants)
	return nil
}

func copyEntries(in []domain.Propellant) []domain.Propellant {
	out := make([]domain.Propellant, len(in))
	for i := range in {
		out[i] = *in[i].Clone()
	}
	return out
}
