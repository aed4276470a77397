package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/ports"
)

// BackupSuffix is appended to the design path for the backup copy.
const BackupSuffix = ".bak"

type backupMiddleware struct {
	next ports.DesignStore
}

// NewBackupMiddleware creates a middleware that preserves the previous
// version of a design file before overwriting it. The copy lives next
// to the original under the same path plus BackupSuffix.
func NewBackupMiddleware() Middleware {
	return func(next ports.DesignStore) ports.DesignStore {
		return &backupMiddleware{next: next}
	}
}

func (m *backupMiddleware) Save(ctx context.Context, path string, design *domain.Design) error {
	previous, err := m.next.Load(ctx, path)
	switch {
	case err == nil:
		if err := m.next.Save(ctx, path+BackupSuffix, previous); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
	case errors.Is(err, domain.ErrDesignNotFound):
		// First save to this path, nothing to back up.
	default:
		// The existing file is unreadable; it cannot be preserved as a
		// typed backup, so overwrite it.
	}

	return m.next.Save(ctx, path, design)
}

func (m *backupMiddleware) Load(ctx context.Context, path string) (*domain.Design, error) {
	return m.next.Load(ctx, path)
}

func (m *backupMiddleware) NormalizePath(path string) string {
	return normalizePath(m.next, path)
}
