package library

import (
	"context"
	"fmt"

	"github.com/openburn/motordoc/pkg/domain"
)

// Report describes what reconciliation did to the library and to the
// design's embedded propellant.
type Report struct {
	// Added is true when a new entry was appended to the library.
	Added bool

	// Name is the library name the design's propellant ended up with.
	Name string

	// RenamedFrom holds the original name when a collision forced a
	// disambiguating rename, otherwise empty.
	RenamedFrom string

	// Message is a human-readable summary suitable for surfacing to
	// the user, empty when nothing happened.
	Message string
}

// Renamed reports whether the design's propellant was renamed.
func (r *Report) Renamed() bool {
	return r.RenamedFrom != ""
}

// Reconcile merges the design's embedded propellant into the shared
// library without data loss, whenever a document is adopted as current:
//
//  1. No embedded propellant: nothing to do.
//  2. Name unknown to the library: append as a new entry.
//  3. Name known with identical properties: nothing to do.
//  4. Name known with different properties: rename the design's copy to
//     "<name> (N)" for the smallest free N, then append it.
//
// Library entries are never overwritten or deleted and names stay
// unique. The design is modified in place only in case 4 (the rename).
// The renamed design is not persisted here; if the caller never
// re-saves it, reloading that file will repeat case 4 and append
// another disambiguated duplicate.
//
// On a persist failure the in-memory library is rolled back to match
// the store and the design's propellant keeps its original name.
func (m *Manager) Reconcile(ctx context.Context, design *domain.Design) (*Report, error) {
	if design == nil || design.Propellant == nil {
		return &Report{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	prop := design.Propellant
	existing := m.byName(prop.Name)

	if existing == nil {
		report := &Report{
			Added:   true,
			Name:    prop.Name,
			Message: fmt.Sprintf("the propellant from the loaded motor was not in the library, so it was added as %q", prop.Name),
		}
		if err := m.append(ctx, prop); err != nil {
			return nil, err
		}
		m.logger.Info("propellant added to library", "name", prop.Name)
		return report, nil
	}

	if prop.SameProperties(existing) {
		return &Report{Name: prop.Name}, nil
	}

	// Collision: same display name, different properties. Keep both by
	// renaming the document's copy to the first free numbered variant.
	original := prop.Name
	number := 1
	for m.byName(fmt.Sprintf("%s (%d)", original, number)) != nil {
		number++
	}
	renamed := fmt.Sprintf("%s (%d)", original, number)

	prop.Name = renamed
	if err := m.append(ctx, prop); err != nil {
		prop.Name = original
		return nil, err
	}

	m.logger.Info("propellant collision resolved",
		"name", original,
		"renamed_to", renamed,
	)
	return &Report{
		Added:       true,
		Name:        renamed,
		RenamedFrom: original,
		Message: fmt.Sprintf("the propellant from the loaded motor matches an existing library entry by name but has different properties; it was added to the library as %q", renamed),
	}, nil
}

// append adds a copy of the propellant and persists the collection.
// Caller holds m.mu. On persist failure the in-memory copy is removed
// again so memory and store stay consistent.
func (m *Manager) append(ctx context.Context, prop *domain.Propellant) error {
	m.propellants = append(m.propellants, *prop.Clone())
	if err := m.store.Persist(ctx, m.propellants); err != nil {
		m.propellants = m.propellants[:len(m.propellants)-1]
		return fmt.Errorf("failed to persist propellant library: %w", err)
	}
	return nil
}
