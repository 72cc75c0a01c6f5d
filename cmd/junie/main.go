// Package main provides the junie CLI: path recommendations from the
// terminal, template seeding, and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "junie",
	Short: "Junie path recommendation engine",
	Long:  "Junie ranks curated career and business path templates against a user's onboarding profile and explains why each one fits.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
