package domain

import "reflect"

// Design represents the full state of one motor design document: the
// configuration tree, the embedded propellant, the grain stack and the
// nozzle. A Design is treated as an immutable snapshot by the rest of
// the system; anything that needs to hold on to one should Clone it.
type Design struct {
	// Config holds simulation and document settings as a free-form tree.
	Config map[string]any `yaml:"config" json:"config"`

	// Propellant is the embedded propellant, or nil for a design that
	// has not selected one yet.
	Propellant *Propellant `yaml:"propellant,omitempty" json:"propellant,omitempty"`

	// Grains is the ordered grain stack, head end first.
	Grains []Grain `yaml:"grains" json:"grains"`

	// Nozzle holds the nozzle geometry and loss coefficients.
	Nozzle Nozzle `yaml:"nozzle" json:"nozzle"`
}

// Grain is one grain in the stack: a geometry type name (resolved via
// the registry) plus its numeric properties.
type Grain struct {
	Type       string             `yaml:"type" json:"type" mapstructure:"type"`
	Properties map[string]float64 `yaml:"properties" json:"properties" mapstructure:"properties"`
}

// Nozzle holds nozzle geometry and efficiency parameters.
type Nozzle struct {
	Throat       float64 `yaml:"throat" json:"throat" mapstructure:"throat"`
	Exit         float64 `yaml:"exit" json:"exit" mapstructure:"exit"`
	Efficiency   float64 `yaml:"efficiency" json:"efficiency" mapstructure:"efficiency"`
	DivAngle     float64 `yaml:"divAngle" json:"divAngle" mapstructure:"divAngle"`
	ConvAngle    float64 `yaml:"convAngle" json:"convAngle" mapstructure:"convAngle"`
	ThroatLength float64 `yaml:"throatLength" json:"throatLength" mapstructure:"throatLength"`
	SlagCoeff    float64 `yaml:"slagCoeff" json:"slagCoeff" mapstructure:"slagCoeff"`
	ErosionCoeff float64 `yaml:"erosionCoeff" json:"erosionCoeff" mapstructure:"erosionCoeff"`
}

// NewDesign creates an empty design with an initialized config tree.
func NewDesign() *Design {
	return &Design{
		Config: make(map[string]any),
		Grains: []Grain{},
	}
}

// Clone returns a deep copy of the design. The copy shares no mutable
// state with the original.
func (d *Design) Clone() *Design {
	if d == nil {
		return nil
	}
	out := &Design{
		Config: cloneTree(d.Config),
		Nozzle: d.Nozzle,
	}
	if d.Propellant != nil {
		out.Propellant = d.Propellant.Clone()
	}
	if d.Grains != nil {
		out.Grains = make([]Grain, len(d.Grains))
		for i, g := range d.Grains {
			out.Grains[i] = Grain{Type: g.Type, Properties: cloneProps(g.Properties)}
		}
	}
	return out
}

// Equal reports whether two designs describe the same document state.
// Comparison is structural; numeric config values compare by value
// rather than Go kind, so a design still equals itself after a YAML
// round trip (where e.g. 1.0 may come back as an int).
func (d *Design) Equal(other *Design) bool {
	if d == nil || other == nil {
		return d == other
	}
	return reflect.DeepEqual(canonical(d.Config), canonical(other.Config)) &&
		d.Propellant.DeepEqual(other.Propellant) &&
		equalGrains(d.Grains, other.Grains) &&
		d.Nozzle == other.Nozzle
}

func equalGrains(a, b []Grain) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			return false
		}
		if !reflect.DeepEqual(canonicalProps(a[i].Properties), canonicalProps(b[i].Properties)) {
			return false
		}
	}
	return true
}

func cloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneTree(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func cloneProps(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// canonical normalizes a value tree so that numeric kinds do not affect
// equality. YAML decodes whole floats as ints, which would otherwise
// make a freshly loaded design unequal to the one that was saved.
func canonical(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			return nil
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = canonical(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = canonical(e)
		}
		return out
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
