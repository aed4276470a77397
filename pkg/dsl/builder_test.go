package dsl_test

import (
	"testing"

	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/dsl"
	"github.com/openburn/motordoc/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FullDesign(t *testing.T) {
	design, err := dsl.New().
		Config("ambPressure", 101325.0).
		Propellant("KNSB", map[string]float64{"density": 1750}).
		Nozzle(0.01, 0.03, 0.9).
		Grain("BATES").Diameter(0.083).Length(0.12).Done().
		Grain("BATES").CoreDiameter(0.03).Done().
		Build()

	require.NoError(t, err)
	assert.Equal(t, 101325.0, design.Config["ambPressure"])
	require.NotNil(t, design.Propellant)
	assert.Equal(t, "KNSB", design.Propellant.Name)
	assert.Equal(t, 0.01, design.Nozzle.Throat)
	require.Len(t, design.Grains, 2)
	assert.Equal(t, 0.12, design.Grains[0].Properties["length"])
	assert.Equal(t, 0.03, design.Grains[1].Properties["coreDiameter"])
}

func TestBuilder_GrainDefaultsFromRegistry(t *testing.T) {
	design, err := dsl.New().
		Grain("BATES").Done().
		Build()

	require.NoError(t, err)
	require.Len(t, design.Grains, 1)

	want, err := registry.Default.New("BATES")
	require.NoError(t, err)
	assert.Equal(t, want.Properties, design.Grains[0].Properties)
}

func TestBuilder_UnknownGrainTypeFails(t *testing.T) {
	_, err := dsl.New().
		Grain("Hexagon").Done().
		Build()

	assert.Error(t, err)
}

func TestBuilder_CustomRegistry(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("Slab", func() domain.Grain {
		return domain.Grain{Type: "Slab", Properties: map[string]float64{"thickness": 0.01}}
	})

	design, err := dsl.New().
		WithRegistry(reg).
		Grain("Slab").Set("thickness", 0.02).Done().
		Build()

	require.NoError(t, err)
	assert.Equal(t, 0.02, design.Grains[0].Properties["thickness"])
}

func TestBuilder_BuildDoesNotAliasBuilderState(t *testing.T) {
	b := dsl.New().Propellant("KNDX", map[string]float64{"density": 1785})

	first, err := b.Build()
	require.NoError(t, err)

	first.Propellant.Properties["density"] = 1

	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1785.0, second.Propellant.Properties["density"])
}
