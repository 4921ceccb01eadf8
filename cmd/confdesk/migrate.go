package main

import (
	"fmt"

	"confdesk/core/appbootstrap"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, schema, err := appbootstrap.OpenAndMigrate(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", schema)
			return nil
		},
	}
}
