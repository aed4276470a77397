package dsl

import "github.com/openburn/motordoc/pkg/domain"

// GrainBuilder provides a fluent API for configuring one grain.
type GrainBuilder struct {
	grain   domain.Grain
	builder *Builder
}

// Set overrides one numeric property of the grain.
func (g *GrainBuilder) Set(key string, value float64) *GrainBuilder {
	g.grain.Properties[key] = value
	return g
}

// Diameter sets the grain's outer diameter.
func (g *GrainBuilder) Diameter(d float64) *GrainBuilder {
	return g.Set("diameter", d)
}

// Length sets the grain's length.
func (g *GrainBuilder) Length(l float64) *GrainBuilder {
	return g.Set("length", l)
}

// CoreDiameter sets the grain's core diameter.
func (g *GrainBuilder) CoreDiameter(d float64) *GrainBuilder {
	return g.Set("coreDiameter", d)
}

// InhibitEnds marks how many grain ends are inhibited (0, 1 or 2).
func (g *GrainBuilder) InhibitEnds(n int) *GrainBuilder {
	return g.Set("inhibitedEnds", float64(n))
}

// Done returns to the design builder.
func (g *GrainBuilder) Done() *Builder {
	return g.builder
}
