package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/openburn/motordoc/internal/logging"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/history"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/ports"
)

// Manager owns the lifecycle of the open design document: the version
// history with its cursor, the saved marker, and the file path. All
// mutation of that state goes through the Manager, serialized by one
// mutex, so a completing save can only mark the cursor that was current
// when it started.
type Manager struct {
	store    ports.DesignStore
	library  *library.Manager
	prompter ports.Prompter
	logger   *slog.Logger

	mu          sync.Mutex
	hist        *history.History
	savedMarker int
	path        string

	listeners     []domain.ChangeListener
	defaultDesign *domain.Design
}

// State is a read-only snapshot of the manager's bookkeeping, for
// surfaces that render title bars, menus or APIs.
type State struct {
	Path     string `json:"path"`
	Dirty    bool   `json:"dirty"`
	CanUndo  bool   `json:"canUndo"`
	CanRedo  bool   `json:"canRedo"`
	Cursor   int    `json:"cursor"`
	Versions int    `json:"versions"`
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithPrompter installs the unsaved-changes decision gate. Without one,
// destructive operations on a dirty document are refused.
func WithPrompter(p ports.Prompter) Option {
	return func(m *Manager) {
		m.prompter = p
	}
}

// WithLibrary enables propellant reconciliation against the shared
// library whenever a document is adopted as current.
func WithLibrary(lib *library.Manager) Option {
	return func(m *Manager) {
		m.library = lib
	}
}

// WithListener subscribes a change listener at construction time.
func WithListener(l domain.ChangeListener) Option {
	return func(m *Manager) {
		m.listeners = append(m.listeners, l)
	}
}

// WithDefaultDesign sets the design used as the starting point for New.
// Typically carries the user's preferred simulation settings.
func WithDefaultDesign(d *domain.Design) Option {
	return func(m *Manager) {
		m.defaultDesign = d.Clone()
	}
}

// NewManager creates a workspace over the given design store, starting
// with a fresh untitled document.
func NewManager(store ports.DesignStore, opts ...Option) *Manager {
	m := &Manager{
		store:         store,
		logger:        logging.NewNop(),
		defaultDesign: domain.NewDesign(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.hist = history.New(m.defaultDesign)
	return m
}

// Subscribe registers a listener for change events.
func (m *Manager) Subscribe(l domain.ChangeListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Current returns a copy of the snapshot at the cursor.
func (m *Manager) Current() *domain.Design {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hist.Current()
}

// Path returns the file path of the open document, empty when untitled.
func (m *Manager) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

// IsDirty reports whether unsaved changes exist.
func (m *Manager) IsDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isDirty()
}

// CanUndo reports whether there is history before the cursor.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hist.CanUndo()
}

// CanRedo reports whether there is history after the cursor.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hist.CanRedo()
}

// State returns the current bookkeeping snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		Path:     m.path,
		Dirty:    m.isDirty(),
		CanUndo:  m.hist.CanUndo(),
		CanRedo:  m.hist.CanRedo(),
		Cursor:   m.hist.Cursor(),
		Versions: m.hist.Len(),
	}
}

// AddVersion commits a new snapshot after a user-visible edit. A
// snapshot equal to the current one is elided silently; a commit from a
// rolled-back state discards the redo tail.
func (m *Manager) AddVersion(d *domain.Design) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hist.AddVersion(d) {
		m.notify()
	}
}

// OverrideCurrent amends the snapshot at the cursor in place, without
// growing the history. Must only be used for in-progress edits that
// have not yet been committed as user-visible history.
func (m *Manager) OverrideCurrent(d *domain.Design) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hist.OverrideCurrent(d)
	m.notify()
}

// Undo rolls the cursor back one version.
func (m *Manager) Undo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hist.Undo(); err != nil {
		return err
	}
	m.notify()
	return nil
}

// Redo advances the cursor one version.
func (m *Manager) Redo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hist.Redo(); err != nil {
		return err
	}
	m.notify()
	return nil
}

// Save persists the current snapshot to the document's recorded path.
// Returns domain.ErrNoPath for an untitled document; use SaveAs first.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(ctx)
}

// SaveAs persists the current snapshot to the given path and records it
// as the document's path. The store's file extension is appended when
// missing. A failed persist leaves path and saved marker untouched.
func (m *Manager) SaveAs(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == "" {
		return domain.ErrNoPath
	}
	path = m.normalizePath(path)

	prev := m.path
	m.path = path
	if err := m.save(ctx); err != nil {
		m.path = prev
		return err
	}
	return nil
}

// New starts a fresh untitled document from the default design,
// guarding unsaved changes first. The default design is reconciled
// against the propellant library before being adopted.
func (m *Manager) New(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.confirmDiscard(ctx); err != nil {
		return err
	}
	return m.startFrom(ctx, m.defaultDesign.Clone(), "")
}

// Open loads the design at path and adopts it as the current document,
// guarding unsaved changes first. On any load failure the previously
// open document remains current and unchanged.
func (m *Manager) Open(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.confirmDiscard(ctx); err != nil {
		return err
	}
	path = m.normalizePath(path)

	design, err := m.store.Load(ctx, path)
	if err != nil {
		m.logger.Warn("failed to load design", "path", path, "err", err)
		return fmt.Errorf("failed to load design from %s: %w", path, err)
	}
	return m.startFrom(ctx, design, path)
}

// StartFrom adopts the given design wholesale as the current document,
// resetting history, cursor and saved marker. It does not consult the
// unsaved-changes gate; New and Open are the guarded entry points.
func (m *Manager) StartFrom(ctx context.Context, design *domain.Design, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startFrom(ctx, design.Clone(), m.normalizePath(path))
}

// startFrom reconciles the design's propellant and resets all state.
// Caller holds m.mu. The design must be owned by the callee (cloned or
// freshly loaded).
func (m *Manager) startFrom(ctx context.Context, design *domain.Design, path string) error {
	if m.library != nil {
		report, err := m.library.Reconcile(ctx, design)
		if err != nil {
			return err
		}
		if report.Message != "" {
			m.logger.Info("propellant reconciled", "message", report.Message)
		}
	}

	m.hist.Reset(design)
	m.savedMarker = 0
	m.path = path
	m.notify()
	return nil
}

// save persists the snapshot at the cursor. Caller holds m.mu, so the
// saved marker can only ever be set to the cursor captured here.
func (m *Manager) save(ctx context.Context) error {
	if m.path == "" {
		return domain.ErrNoPath
	}

	cursor := m.hist.Cursor()
	if err := m.store.Save(ctx, m.path, m.hist.Current()); err != nil {
		m.logger.Warn("failed to save design", "path", m.path, "err", err)
		return fmt.Errorf("failed to save design to %s: %w", m.path, err)
	}

	m.savedMarker = cursor
	m.logger.Info("design saved", "path", m.path, "version", cursor)
	m.notify()
	return nil
}

// confirmDiscard is the unsaved-changes gate, evaluated exactly once
// per destructive operation. Caller holds m.mu.
func (m *Manager) confirmDiscard(ctx context.Context) error {
	if !m.isDirty() {
		return nil
	}
	if m.prompter == nil {
		return domain.ErrCancelled
	}

	choice, err := m.prompter.ConfirmDiscard(ctx)
	if err != nil {
		return fmt.Errorf("unsaved-changes prompt failed: %w", err)
	}

	switch choice {
	case ports.ChoiceSave:
		if err := m.save(ctx); err != nil {
			// A failed save never silently becomes a discard.
			return fmt.Errorf("%w: %w", domain.ErrGuardAborted, err)
		}
		return nil
	case ports.ChoiceDiscard:
		return nil
	default:
		return domain.ErrCancelled
	}
}

func (m *Manager) isDirty() bool {
	return m.savedMarker != m.hist.Cursor()
}

// normalizePath applies the store's path convention (e.g. appending the
// design file extension) when the store defines one.
func (m *Manager) normalizePath(path string) string {
	if path == "" {
		return path
	}
	if n, ok := m.store.(ports.PathNormalizer); ok {
		return n.NormalizePath(path)
	}
	return path
}

// notify emits a change event to all listeners. Caller holds m.mu.
func (m *Manager) notify() {
	event := domain.ChangeEvent{
		Path:  m.path,
		Saved: !m.isDirty(),
	}
	for _, l := range m.listeners {
		l(event)
	}
}
