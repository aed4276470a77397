/*
Package dsl provides a fluent builder for programmatically constructing
motor designs.

It lets tests and tools assemble a complete design with type-checked Go
code instead of hand-written YAML, seeding each grain from the
registry's defaults for its geometry type.

Example usage:

	design, err := dsl.New().
		Config("ambPressure", 101325.0).
		Propellant("KNSB", map[string]float64{"density": 1750}).
		Nozzle(0.01, 0.03, 0.9).
		Grain("BATES").Diameter(0.083).Length(0.12).Done().
		Grain("BATES").Diameter(0.083).Length(0.12).Done().
		Build()
	if err != nil {
		// unknown grain type
	}

	// The resulting design can be committed to a workspace.
	ws.AddVersion(design)
*/
package dsl
