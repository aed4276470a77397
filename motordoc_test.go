package motordoc_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/openburn/motordoc"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	ws, _ := motordoc.New(motordoc.WithLibraryPath(filepath.Join(dir, "propellants.yaml")))

	design := ws.Current()
	design.Config["name"] = "demo motor"
	design.Propellant = &domain.Propellant{
		Name:       "KNSB",
		Properties: map[string]float64{"density": 1750},
	}
	ws.AddVersion(design)
	require.True(t, ws.IsDirty())

	// The extension is appended automatically.
	path := filepath.Join(dir, "demo")
	require.NoError(t, ws.SaveAs(ctx, path))
	assert.Equal(t, path+".ric", ws.Path())
	assert.False(t, ws.IsDirty())

	// Reopening adopts the saved design and reconciles its propellant
	// into the (empty) library.
	ws2, lib2 := motordoc.New(motordoc.WithLibraryPath(filepath.Join(dir, "propellants.yaml")))
	require.NoError(t, ws2.Open(ctx, path+".ric"))
	assert.Equal(t, "demo motor", ws2.Current().Config["name"])

	names, err := lib2.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"KNSB"}, names)
}
