package cli

import (
	"log/slog"

	"github.com/openburn/motordoc"
	redisAdapter "github.com/openburn/motordoc/pkg/adapters/redis"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/persistence/middleware"
	"github.com/openburn/motordoc/pkg/workspace"
)

// Options collect the persistent CLI flags that select the backing
// stores.
type Options struct {
	// LibraryPath is the propellant library file, ignored when
	// RedisAddr is set.
	LibraryPath string

	// RedisAddr selects a Redis-backed shared propellant library.
	RedisAddr string

	Logger *slog.Logger
}

// BuildWorkspace wires a workspace and library from CLI flags: file
// stores by default, a Redis library when requested, and an interactive
// terminal prompter as the unsaved-changes gate.
func BuildWorkspace(opts Options) (*workspace.Manager, *library.Manager) {
	facadeOpts := []motordoc.Option{
		motordoc.WithPrompter(NewTerminalPrompter()),
		motordoc.WithBackups(),
	}
	if opts.Logger != nil {
		facadeOpts = append(facadeOpts,
			motordoc.WithLogger(opts.Logger),
			motordoc.WithStoreMiddleware(middleware.NewLoggingMiddleware(opts.Logger)),
		)
	}
	if opts.RedisAddr != "" {
		facadeOpts = append(facadeOpts, motordoc.WithLibraryStore(redisAdapter.New(opts.RedisAddr, "", 0)))
	} else if opts.LibraryPath != "" {
		facadeOpts = append(facadeOpts, motordoc.WithLibraryPath(opts.LibraryPath))
	}
	return motordoc.New(facadeOpts...)
}
