// Package main provides the entry point for the placement analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement_agent",
	Short: "Candidate scoring and recommendation engine",
	Long:  "Placement Analyzer merges resume, repository and problem-solving skill evidence into a skill profile, then produces a role recommendation, gap report, readiness score and phased learning roadmap.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
