package main

import (
	"github.com/justsurfingit/job-portal/internal/config"
	"github.com/justsurfingit/job-portal/internal/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "jobportal",
		Short:        "Job portal API server",
		SilenceUsage: true,
		// Running the binary with no subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())
	return rootCmd
}

// loadConfig loads configuration and installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.New(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}
