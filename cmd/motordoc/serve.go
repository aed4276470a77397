package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openburn/motordoc/internal/cli"
	"github.com/openburn/motordoc/internal/logging"
	httpAdapter "github.com/openburn/motordoc/pkg/adapters/http"
	"github.com/openburn/motordoc/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts a motordoc workspace in server mode, exposing the document lifecycle as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath, _ := cmd.Flags().GetString("library")
		redisAddr, _ := cmd.Flags().GetString("redis")
		port, _ := cmd.Flags().GetString("port")

		logger := logging.New(slog.LevelInfo)
		ws, lib := cli.BuildWorkspace(cli.Options{
			LibraryPath: libraryPath,
			RedisAddr:   redisAddr,
			Logger:      logger,
		})

		recorder := observability.NewRecorder()
		ws.Subscribe(recorder.Record)
		go func() {
			for ev := range recorder.Watch() {
				logger.Info("document changed", "path", ev.Path, "saved", ev.Saved)
			}
		}()

		handler := httpAdapter.NewHandler(ws,
			httpAdapter.WithLibrary(lib),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting motordoc server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Motordoc server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
