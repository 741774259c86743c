package main

import (
	"log/slog"

	"github.com/justsurfingit/job-portal/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			slog.Info("migrations complete")
			return nil
		},
	}
}
