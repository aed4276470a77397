/*
Package motordoc manages the lifecycle of an editable solid rocket
motor design document: versioned snapshots with linear undo/redo,
save-state tracking, YAML file persistence, and reconciliation of the
document's embedded propellant against a shared named library.

# Concept

The workspace manager is the exclusive owner of the open document's
history, cursor and saved marker. Edits are committed as immutable
snapshots; committing from a rolled-back state discards the abandoned
redo tail, keeping the history a flat sequence plus one cursor.
Destructive operations (new, open) pass through a three-way
Save/Discard/Cancel gate whenever unsaved changes exist.

This hexagonal architecture decouples the lifecycle from its adapters:
storage backends implement small ports, and the same workspace can be
driven from a CLI, an HTTP API or an MCP host.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/openburn/motordoc"
	)

	func main() {
		ws, _ := motordoc.New()
		ctx := context.Background()

		// Edit: commit a new version of the design.
		design := ws.Current()
		design.Config["name"] = "my motor"
		ws.AddVersion(design)

		// Roll back, then persist.
		if err := ws.Undo(); err != nil {
			log.Fatal(err)
		}
		if err := ws.SaveAs(ctx, "my-motor"); err != nil { // saved as my-motor.ric
			log.Fatal(err)
		}
	}
*/
package motordoc
