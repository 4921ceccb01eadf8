package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"confdesk/config"
	"confdesk/core/appbootstrap"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve the HTTP API",
		Long:  "Migrate the database and serve the HTTP API until SIGINT or SIGTERM.\n\nEnvironment:\n" + config.Usage(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			logger.Printf("confdesk %s (%s) starting", version, commit)
			return appbootstrap.Run(ctx, cfg, version, logger)
		},
	}
}
