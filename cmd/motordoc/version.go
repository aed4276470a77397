package main

import (
	"fmt"
	"strings"

	"github.com/openburn/motordoc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of motordoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("motordoc version %s\n", strings.TrimSpace(motordoc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
