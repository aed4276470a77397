// Package validation checks motor designs for physically implausible or
// incomplete values before they are simulated or shared.
package validation

import (
	"fmt"

	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/registry"
)

// Validate checks the design and returns an AggregateError listing
// every problem found, or nil for a design with no issues. Grain types
// are resolved against the default registry.
func Validate(design *domain.Design) error {
	return ValidateWith(design, registry.Default)
}

// ValidateWith is Validate with an explicit grain type registry.
func ValidateWith(design *domain.Design, reg *registry.Registry) error {
	var errs []error

	fail := func(field, reason string, value any) {
		errs = append(errs, &ValidationError{Field: field, Reason: reason, Value: value})
	}

	if design == nil {
		return &AggregateError{Errors: []error{
			&ValidationError{Field: "", Reason: "design is nil"},
		}}
	}

	if design.Propellant == nil {
		fail("propellant", "no propellant selected", nil)
	} else {
		checkPropellant(design.Propellant, fail)
	}

	if len(design.Grains) == 0 {
		fail("grains", "grain stack is empty", nil)
	}
	for i, g := range design.Grains {
		checkGrain(i, g, reg, fail)
	}

	checkNozzle(design.Nozzle, fail)

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func checkPropellant(p *domain.Propellant, fail func(string, string, any)) {
	if p.Name == "" {
		fail("propellant.name", "name is empty", nil)
	}
	if d := p.Properties["density"]; d <= 0 {
		fail("propellant.density", "density must be positive", d)
	}
	for _, key := range []string{"a", "n"} {
		if _, ok := p.Properties[key]; !ok {
			fail("propellant."+key, "missing ballistic coefficient", nil)
		}
	}
}

func checkGrain(i int, g domain.Grain, reg *registry.Registry, fail func(string, string, any)) {
	field := func(name string) string {
		return fmt.Sprintf("grains[%d].%s", i, name)
	}

	if _, err := reg.New(g.Type); err != nil {
		fail(field("type"), "unknown grain geometry", g.Type)
		return
	}

	diameter := g.Properties["diameter"]
	if diameter <= 0 {
		fail(field("diameter"), "diameter must be positive", diameter)
	}
	if l := g.Properties["length"]; l <= 0 {
		fail(field("length"), "length must be positive", l)
	}
	if core, ok := g.Properties["coreDiameter"]; ok && core >= diameter {
		fail(field("coreDiameter"), "core diameter must be smaller than the grain diameter", core)
	}
}

func checkNozzle(n domain.Nozzle, fail func(string, string, any)) {
	if n.Throat <= 0 {
		fail("nozzle.throat", "throat diameter must be positive", n.Throat)
	}
	if n.Exit < n.Throat {
		fail("nozzle.exit", "exit diameter must not be smaller than the throat", n.Exit)
	}
	if n.Efficiency <= 0 || n.Efficiency > 1 {
		fail("nozzle.efficiency", "efficiency must be in (0, 1]", n.Efficiency)
	}
}
