package motordoc

import (
	"log/slog"

	"github.com/openburn/motordoc/internal/logging"
	"github.com/openburn/motordoc/pkg/adapters/file"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/persistence/middleware"
	"github.com/openburn/motordoc/pkg/ports"
	"github.com/openburn/motordoc/pkg/workspace"
)

// Version is the motordoc release version.
const Version = "0.6.0"

// config collects the facade-level wiring options.
type config struct {
	libraryPath   string
	libraryStore  ports.LibraryStore
	prompter      ports.Prompter
	logger        *slog.Logger
	middlewares   []middleware.Middleware
	workspaceOpts []workspace.Option
}

// Option defines a functional option for configuring the facade.
type Option func(*config)

// WithLibraryPath sets the propellant library file location
// (default ".motordoc/propellants.yaml").
func WithLibraryPath(path string) Option {
	return func(c *config) {
		c.libraryPath = path
	}
}

// WithLibraryStore injects a custom library backend (e.g. the Redis
// adapter), bypassing the default file store.
func WithLibraryStore(store ports.LibraryStore) Option {
	return func(c *config) {
		c.libraryStore = store
	}
}

// WithPrompter installs the unsaved-changes decision gate.
func WithPrompter(p ports.Prompter) Option {
	return func(c *config) {
		c.prompter = p
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithStoreMiddleware wraps the design store with the given
// middlewares, first middleware outermost.
func WithStoreMiddleware(mws ...middleware.Middleware) Option {
	return func(c *config) {
		c.middlewares = append(c.middlewares, mws...)
	}
}

// WithBackups keeps a backup copy of each design file's previous
// version when it is overwritten.
func WithBackups() Option {
	return WithStoreMiddleware(middleware.NewBackupMiddleware())
}

// WithWorkspaceOptions passes additional options through to the
// workspace manager (listeners, default design, ...).
func WithWorkspaceOptions(opts ...workspace.Option) Option {
	return func(c *config) {
		c.workspaceOpts = append(c.workspaceOpts, opts...)
	}
}

// New builds a ready-to-use workspace: YAML design files on the local
// filesystem, a shared propellant library, and reconciliation wired in.
// It starts with a fresh untitled document.
func New(opts ...Option) (*workspace.Manager, *library.Manager) {
	cfg := &config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	libStore := cfg.libraryStore
	if libStore == nil {
		libStore = file.NewLibraryStore(cfg.libraryPath)
	}
	lib := library.NewManager(libStore, library.WithLogger(cfg.logger))

	wsOpts := []workspace.Option{
		workspace.WithLibrary(lib),
		workspace.WithLogger(cfg.logger),
	}
	if cfg.prompter != nil {
		wsOpts = append(wsOpts, workspace.WithPrompter(cfg.prompter))
	}
	wsOpts = append(wsOpts, cfg.workspaceOpts...)

	store := middleware.Chain(file.NewStore(), cfg.middlewares...)
	ws := workspace.NewManager(store, wsOpts...)
	return ws, lib
}
