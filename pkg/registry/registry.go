package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/openburn/motordoc/pkg/domain"
)

// Constructor builds a fresh grain of a given geometry with its default
// properties filled in.
type Constructor func() domain.Grain

// Registry maps grain geometry names to constructors.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Constructor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]Constructor),
	}
}

// Register adds a geometry to the registry.
// If a geometry with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = fn
}

// New looks up a geometry by name and builds a fresh grain.
// Returns an error if the geometry is not registered.
func (r *Registry) New(name string) (domain.Grain, error) {
	r.mu.RLock()
	fn, ok := r.types[name]
	r.mu.RUnlock()

	if !ok {
		return domain.Grain{}, fmt.Errorf("unknown grain geometry: %s", name)
	}
	return fn(), nil
}

// Types returns the registered geometry names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
