package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openburn/motordoc/internal/presentation/tui"
	fileAdapter "github.com/openburn/motordoc/pkg/adapters/file"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/validation"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Summarize a motor design file",
	Long:  `Loads a design file and prints a rendered summary of its propellant, grains and nozzle.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := fileAdapter.NewStore()
		path := store.NormalizePath(args[0])

		design, err := store.Load(context.Background(), path)
		if err != nil {
			fmt.Printf("Error loading design: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()

		render := tui.NewRenderer()
		out, err := render(designSummary(path, design))
		if err != nil {
			fmt.Printf("Error rendering summary: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func designSummary(path string, d *domain.Design) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", path)

	if d.Propellant != nil {
		fmt.Fprintf(&b, "**Propellant:** %s\n\n", d.Propellant.Name)
	} else {
		b.WriteString("**Propellant:** none\n\n")
	}

	fmt.Fprintf(&b, "## Grains (%d)\n\n", len(d.Grains))
	for i, g := range d.Grains {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g.Type)
	}
	b.WriteString("\n## Nozzle\n\n")
	fmt.Fprintf(&b, "- Throat: %g\n", d.Nozzle.Throat)
	fmt.Fprintf(&b, "- Exit: %g\n", d.Nozzle.Exit)
	fmt.Fprintf(&b, "- Efficiency: %g\n", d.Nozzle.Efficiency)

	if err := validation.Validate(d); err != nil {
		b.WriteString("\n## Issues\n\n")
		for _, e := range validation.ValidationErrors(err) {
			fmt.Fprintf(&b, "- %s\n", e.Error())
		}
	}

	return b.String()
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
