package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/dietradar/internal/dataset"
	"github.com/huangsam/dietradar/internal/server"
	"github.com/spf13/cobra"
)

// serveCmd starts the interactive view server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the radar page and a per-session interaction API",
	Long: `Start an HTTP server with the rendered radar page and a JSON API.

Each session keeps its own legend and hover state, so several viewers can
explore the same dataset independently. With --watch the dataset file is
reloaded on change and existing sessions keep their state.

Examples:
  # Built-in sample on the default address
  dietradar serve

  # Live-reload a dataset you are editing
  dietradar serve --dataset my-diet.yaml --watch --addr :9090`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

// runServe loads the dataset, optionally starts a watcher and blocks until ctx is done.
func runServe(ctx context.Context) error {
	if cfg.Watch && cfg.DatasetPath != "" {
		watcher, err := dataset.NewWatcher(cfg.DatasetPath)
		if err != nil {
			return fmt.Errorf("failed to watch dataset: %w", err)
		}
		return server.NewServer(cfg, watcher.Snapshot().Dataset).Run(ctx, watcher)
	}

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	return server.NewServer(cfg, ds).Run(ctx, nil)
}
