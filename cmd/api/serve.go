package main

import (
	"github.com/dhima/calorie-tracker/internal/api"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := api.NewServer(cmd.Context(), appConfig, appLogger)
	if err != nil {
		return err
	}
	return srv.Serve(cmd.Context())
}
