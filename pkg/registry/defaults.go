package registry

import "github.com/openburn/motordoc/pkg/domain"

// Default is the process-wide registry, pre-seeded with the standard
// grain geometries.
var Default = NewRegistry()

func geometry(name string, props map[string]float64) Constructor {
	return func() domain.Grain {
		copied := make(map[string]float64, len(props))
		for k, v := range props {
			copied[k] = v
		}
		return domain.Grain{Type: name, Properties: copied}
	}
}

func init() {
	base := map[string]float64{"diameter": 0.083, "length": 0.15, "inhibitedEnds": 0}

	seed := func(name string, extra map[string]float64) {
		props := make(map[string]float64, len(base)+len(extra))
		for k, v := range base {
			props[k] = v
		}
		for k, v := range extra {
			props[k] = v
		}
		Default.Register(name, geometry(name, props))
	}

	seed("BATES", map[string]float64{"coreDiameter": 0.0381})
	seed("End Burner", nil)
	seed("Finocyl", map[string]float64{"finWidth": 0.01, "finLength": 0.02, "numFins": 6, "coreDiameter": 0.0254})
	seed("Moon Burner", map[string]float64{"coreDiameter": 0.0254, "coreOffset": 0.02})
	seed("Star Grain", map[string]float64{"numPoints": 5, "pointLength": 0.02, "pointWidth": 0.01})
	seed("X Core", map[string]float64{"slotWidth": 0.01, "slotLength": 0.03})
	seed("C Grain", map[string]float64{"slotWidth": 0.02, "slotOffset": 0})
	seed("D Grain", map[string]float64{"slotOffset": 0.015})
	seed("Custom Grain", nil)
}
