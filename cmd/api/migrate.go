package main

import (
	"fmt"

	"github.com/dhima/calorie-tracker/internal/storage"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the log entry tables and seed the categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}

		db, err := storage.Connect(cmd.Context(), appConfig.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.ApplyMigrations(cmd.Context(), db); err != nil {
			return err
		}
		appLogger.Info("database migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
