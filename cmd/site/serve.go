package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/devcodecare/site/pkg/httpserver"
	"github.com/devcodecare/site/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server for the static site and the contact API.

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", logger.Error(err))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("failed to release resources", logger.Error(err))
		}
	}()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	if err := srv.Run(ctx, a.Router()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
