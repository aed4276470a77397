package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/openburn/motordoc/pkg/adapters/redis"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) *redis.LibraryStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisLibraryStore_Contract(t *testing.T) {
	store := newTestStore(t)
	ports.RunLibraryStoreContract(t, store)
}

func TestRedisLibraryStore_CustomKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, redis.WithKey("lab:propellants"))

	entries := []domain.Propellant{
		{Name: "KNDX", Properties: map[string]float64{"density": 1785}},
	}
	require.NoError(t, store.Persist(ctx, entries))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "KNDX", loaded[0].Name)
}

func TestRedisLibraryStore_BacksReconciliation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	mgr := library.NewManager(store)

	d := domain.NewDesign()
	d.Propellant = &domain.Propellant{
		Name:       "KNSB",
		Properties: map[string]float64{"density": 1750},
	}

	report, err := mgr.Reconcile(ctx, d)
	require.NoError(t, err)
	assert.True(t, report.Added)

	// The appended entry reached Redis.
	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "KNSB", persisted[0].Name)
}
