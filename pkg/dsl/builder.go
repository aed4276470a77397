package dsl

import (
	"fmt"

	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/registry"
)

// Builder manages the design construction.
type Builder struct {
	design *domain.Design
	grains []*GrainBuilder
	reg    *registry.Registry
}

// New creates a new design builder starting from the default design.
func New() *Builder {
	return &Builder{
		design: domain.NewDesign(),
		reg:    registry.Default,
	}
}

// WithRegistry replaces the grain type registry used for validation.
func (b *Builder) WithRegistry(reg *registry.Registry) *Builder {
	b.reg = reg
	return b
}

// Config sets a top-level configuration value (ambient pressure,
// burnout thresholds and the like).
func (b *Builder) Config(key string, value any) *Builder {
	if b.design.Config == nil {
		b.design.Config = make(map[string]any)
	}
	b.design.Config[key] = value
	return b
}

// Propellant sets the design's embedded propellant.
func (b *Builder) Propellant(name string, properties map[string]float64) *Builder {
	props := make(map[string]float64, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	b.design.Propellant = &domain.Propellant{Name: name, Properties: props}
	return b
}

// Nozzle configures the nozzle geometry.
func (b *Builder) Nozzle(throat, exit, efficiency float64) *Builder {
	b.design.Nozzle.Throat = throat
	b.design.Nozzle.Exit = exit
	b.design.Nozzle.Efficiency = efficiency
	return b
}

// Grain appends a new grain of the given type and returns its builder.
func (b *Builder) Grain(grainType string) *GrainBuilder {
	gb := &GrainBuilder{
		grain: domain.Grain{
			Type:       grainType,
			Properties: make(map[string]float64),
		},
		builder: b,
	}
	b.grains = append(b.grains, gb)
	return gb
}

// Build compiles the design. Each grain starts from the registry's
// defaults for its type, overlaid with the properties set on its
// builder; an unknown grain type fails the build.
func (b *Builder) Build() (*domain.Design, error) {
	design := b.design.Clone()
	for i, gb := range b.grains {
		grain, err := b.reg.New(gb.grain.Type)
		if err != nil {
			return nil, fmt.Errorf("grain %d: %w", i, err)
		}
		for k, v := range gb.grain.Properties {
			grain.Properties[k] = v
		}
		design.Grains = append(design.Grains, grain)
	}
	return design, nil
}
