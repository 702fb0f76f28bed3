package main

import (
	"fmt"
	"os"
)

// @title Calorie Tracker API
// @version 1.0
// @description Log food entries with their calories, validated before they are stored, and read daily calorie summaries.

// @contact.name API Support
// @contact.url https://github.com/dhima/calorie-tracker

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
