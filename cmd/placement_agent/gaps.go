package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-analyzer/internal/roles"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List the required skills missing for a role",
	Long:  "Computes the skill gaps between the given candidate skills and a role's requirements, ordered by importance, and prints the gap report as JSON.",
	RunE:  runGaps,
}

var (
	gapsSkills string
	gapsRole   string
	gapsRoles  string
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsSkills, "skills", "s", "", "Comma-separated candidate skills (required)")
	gapsCmd.Flags().StringVarP(&gapsRole, "role", "r", "", "Target role name, matched case-insensitively (required)")
	gapsCmd.Flags().StringVar(&gapsRoles, "roles", "", "Path to role catalogue JSON (embedded default when empty)")

	if err := gapsCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := gapsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	_, cat, err := loadCatalogues("", gapsRoles)
	if err != nil {
		return err
	}

	report := roles.Gaps(splitSkills(gapsSkills), gapsRole, cat)
	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal gap report to JSON: %w", err)
	}
	fmt.Println(string(jsonOutput))
	return nil
}
