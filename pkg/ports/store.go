package ports

import (
	"context"

	"github.com/openburn/motordoc/pkg/domain"
)

// DesignStore defines the interface for persisting a design snapshot to
// a named location and reading it back. A snapshot must round-trip
// losslessly: Load(Save(d)) is Equal to d.
type DesignStore interface {
	// Save persists the design at the given path. On failure the store
	// must leave any previous content at that path intact.
	Save(ctx context.Context, path string, design *domain.Design) error

	// Load retrieves the design at the given path.
	// Returns domain.ErrDesignNotFound if no design exists there, and
	// domain.ErrVersionMismatch (wrapped) for incompatible file versions.
	Load(ctx context.Context, path string) (*domain.Design, error)
}

// LibraryStore defines the interface for persisting the shared
// propellant library as one collection. This subsystem only ever
// appends entries; it never edits or deletes existing ones.
type LibraryStore interface {
	// Load retrieves all library entries. A store that has never been
	// written loads as an empty library, not an error.
	Load(ctx context.Context) ([]domain.Propellant, error)

	// Persist writes the full collection.
	Persist(ctx context.Context, propellants []domain.Propellant) error
}
