package main

import (
	"context"
	"fmt"
	"os"

	"github.com/openburn/motordoc/internal/cli"
	"github.com/spf13/cobra"
)

var propellantsCmd = &cobra.Command{
	Use:   "propellants",
	Short: "List the propellants in the library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath, _ := cmd.Flags().GetString("library")
		redisAddr, _ := cmd.Flags().GetString("redis")

		_, lib := cli.BuildWorkspace(cli.Options{
			LibraryPath: libraryPath,
			RedisAddr:   redisAddr,
		})

		names, err := lib.Names(context.Background())
		if err != nil {
			fmt.Printf("Error loading library: %v\n", err)
			os.Exit(1)
		}

		if len(names) == 0 {
			fmt.Println("The propellant library is empty.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(propellantsCmd)
}
