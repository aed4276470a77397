package domain

import "reflect"

// Propellant is a named bag of numeric properties (density, burn rate
// coefficients, combustion gas parameters). Identity in the shared
// library is the display name; content equality deliberately ignores
// the name so reconciliation can detect renamed duplicates.
type Propellant struct {
	Name       string             `yaml:"name" json:"name" mapstructure:"name"`
	Properties map[string]float64 `yaml:"properties" json:"properties" mapstructure:"properties"`
}

// Clone returns a deep copy of the propellant.
func (p *Propellant) Clone() *Propellant {
	if p == nil {
		return nil
	}
	return &Propellant{Name: p.Name, Properties: cloneProps(p.Properties)}
}

// SameProperties reports whether both propellants have identical
// property values, regardless of their names.
func (p *Propellant) SameProperties(other *Propellant) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.Properties) != len(other.Properties) {
		return false
	}
	for k, v := range p.Properties {
		if ov, ok := other.Properties[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// DeepEqual reports whether both propellants match by name and content.
func (p *Propellant) DeepEqual(other *Propellant) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Name == other.Name &&
		reflect.DeepEqual(canonicalProps(p.Properties), canonicalProps(other.Properties))
}

func canonicalProps(m map[string]float64) map[string]float64 {
	if len(m) == 0 {
		return nil
	}
	return m
}
