package main

import (
	"fmt"

	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/pkg/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	appConfig  config.App
	appLogger  logging.Logger
)

var rootCmd = &cobra.Command{
	Use:           "calorie-api",
	Short:         "Calorie tracker HTTP API",
	Long:          "Serves the /log and /summaries HTTP API backed by MySQL.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appConfig = cfg

		logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		appLogger = logger
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appLogger == nil {
			return nil
		}
		return appLogger.Sync()
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}
