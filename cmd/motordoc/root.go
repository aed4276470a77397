package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "motordoc",
	Short: "Motordoc manages versioned motor design documents",
	Long:  `Motordoc tracks motor design files with linear undo history, save state and a shared propellant library.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("library", "", "Path to the propellant library file")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for a shared propellant library")
}
