package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/openburn/motordoc"
	"github.com/openburn/motordoc/internal/cli"
	"github.com/openburn/motordoc/internal/logging"
	mcpAdapter "github.com/openburn/motordoc/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts a motordoc workspace as an MCP server over stdio.
This allows AI agents to edit, undo, save and open motor designs as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath, _ := cmd.Flags().GetString("library")
		redisAddr, _ := cmd.Flags().GetString("redis")

		logger := logging.New(slog.LevelDebug)
		slog.SetDefault(logger)

		ws, lib := cli.BuildWorkspace(cli.Options{
			LibraryPath: libraryPath,
			RedisAddr:   redisAddr,
			Logger:      logger,
		})

		srv := mcpAdapter.NewServer(ws, lib, motordoc.Version)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		slog.Info("Starting motordoc MCP server (stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
