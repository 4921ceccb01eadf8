package main

import (
	"confdesk/config"
	"confdesk/core/utils"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "confdesk",
		Short:         "Conference logistics admin backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "path to a yaml or .env config file (environment only when empty)")
	root.AddCommand(newServeCmd(), newMigrateCmd(), newVersionCmd())
	return root
}

// loadConfig reads the config named by --config and returns it with a stderr logger.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, *utils.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, utils.NewLogger(), nil
}
