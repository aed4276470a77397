package library

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/openburn/motordoc/internal/logging"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/ports"
)

// Manager is the single owner of the in-process propellant library.
// It loads the collection from a LibraryStore once, serves lookups, and
// appends new entries during reconciliation. From this subsystem's
// point of view the library is append-only: entries are never edited or
// deleted here.
type Manager struct {
	store ports.LibraryStore

	mu          sync.Mutex
	propellants []domain.Propellant
	loaded      bool

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for reconciliation events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a library manager backed by the given store.
func NewManager(store ports.LibraryStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads the library from the store. It is called lazily by the
// other methods, but callers may invoke it eagerly to surface storage
// errors at startup.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureLoaded(ctx)
}

func (m *Manager) ensureLoaded(ctx context.Context) error {
	if m.loaded {
		return nil
	}
	entries, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load propellant library: %w", err)
	}
	m.propellants = entries
	m.loaded = true
	return nil
}

// Names returns the display names of all entries.
func (m *Manager) Names(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	names := make([]string, len(m.propellants))
	for i, p := range m.propellants {
		names[i] = p.Name
	}
	return names, nil
}

// ByName returns a copy of the entry with the given display name.
func (m *Manager) ByName(ctx context.Context, name string) (*domain.Propellant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if p := m.byName(name); p != nil {
		return p.Clone(), nil
	}
	return nil, nil
}

// All returns copies of every entry.
func (m *Manager) All(ctx context.Context) ([]domain.Propellant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Propellant, len(m.propellants))
	for i, p := range m.propellants {
		out[i] = *p.Clone()
	}
	return out, nil
}

func (m *Manager) byName(name string) *domain.Propellant {
	for i := range m.propellants {
		if m.propellants[i].Name == name {
			return &m.propellants[i]
		}
	}
	return nil
}
