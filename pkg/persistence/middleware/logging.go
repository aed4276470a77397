package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.DesignStore
	logger *slog.Logger
}

// NewLoggingMiddleware creates a middleware that logs every store
// operation with its outcome and duration.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.DesignStore) ports.DesignStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, path string, design *domain.Design) error {
	start := time.Now()
	err := m.next.Save(ctx, path, design)
	if err != nil {
		m.logger.Error("design save failed", "path", path, "error", err, "duration", time.Since(start))
		return err
	}
	m.logger.Info("design saved", "path", path, "grains", len(design.Grains), "duration", time.Since(start))
	return nil
}

func (m *loggingMiddleware) Load(ctx context.Context, path string) (*domain.Design, error) {
	start := time.Now()
	design, err := m.next.Load(ctx, path)
	if err != nil {
		m.logger.Error("design load failed", "path", path, "error", err, "duration", time.Since(start))
		return nil, err
	}
	m.logger.Info("design loaded", "path", path, "grains", len(design.Grains), "duration", time.Since(start))
	return design, nil
}

func (m *loggingMiddleware) NormalizePath(path string) string {
	return normalizePath(m.next, path)
}
