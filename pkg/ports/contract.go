package ports

import (
	"context"
	"testing"

	"github.com/openburn/motordoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDesignStoreContract runs a suite of tests to verify that a
// DesignStore implementation adheres to the interface contract.
// pathFor maps a logical name to a store path valid for the
// implementation under test.
func RunDesignStoreContract(t *testing.T, store DesignStore, pathFor func(name string) string) {
	ctx := context.Background()

	design := &domain.Design{
		Config: map[string]any{"name": "contract motor", "timestep": 0.03},
		Propellant: &domain.Propellant{
			Name:       "Contract Fuel",
			Properties: map[string]float64{"density": 1650, "n": 0.32},
		},
		Grains: []domain.Grain{
			{Type: "BATES", Properties: map[string]float64{"diameter": 0.083, "length": 0.12}},
		},
		Nozzle: domain.Nozzle{Throat: 0.014, Exit: 0.041, Efficiency: 0.9},
	}

	t.Run("SaveAndLoadRoundTrip", func(t *testing.T) {
		path := pathFor("round-trip")

		err := store.Save(ctx, path, design)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, design.Equal(loaded), "loaded design must equal the saved one")
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		_, err := store.Load(ctx, pathFor("does-not-exist"))
		assert.ErrorIs(t, err, domain.ErrDesignNotFound)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		path := pathFor("overwrite")
		require.NoError(t, store.Save(ctx, path, design))

		updated := design.Clone()
		updated.Config["name"] = "updated motor"
		require.NoError(t, store.Save(ctx, path, updated))

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "updated motor", loaded.Config["name"])
	})
}

// RunLibraryStoreContract verifies a LibraryStore implementation.
// The store must start empty.
func RunLibraryStoreContract(t *testing.T, store LibraryStore) {
	ctx := context.Background()

	t.Run("EmptyOnFirstLoad", func(t *testing.T) {
		entries, err := store.Load(ctx)
		require.NoError(t, err, "a never-written store loads as empty, not as an error")
		assert.Empty(t, entries)
	})

	t.Run("PersistAndLoad", func(t *testing.T) {
		library := []domain.Propellant{
			{Name: "KNSB", Properties: map[string]float64{"density": 1750, "a": 5.13e-05}},
			{Name: "KNSU", Properties: map[string]float64{"density": 1890, "a": 1.01e-04}},
		}

		require.NoError(t, store.Persist(ctx, library))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "KNSB", loaded[0].Name)
		assert.Equal(t, float64(1890), loaded[1].Properties["density"])
	})

	t.Run("PersistReplacesCollection", func(t *testing.T) {
		library := []domain.Propellant{
			{Name: "RCS White", Properties: map[string]float64{"density": 1820}},
		}
		require.NoError(t, store.Persist(ctx, library))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "RCS White", loaded[0].Name)
	})
}
