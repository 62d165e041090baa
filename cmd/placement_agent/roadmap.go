package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-analyzer/internal/roadmap"
	"github.com/jonathan/placement-analyzer/internal/roles"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a phased learning roadmap for a role",
	Long:  "Computes the skill gaps for the given role and converts them into a phased learning plan with curated resources, project ideas and effort estimates.",
	RunE:  runRoadmap,
}

var (
	roadmapSkills string
	roadmapRole   string
	roadmapProven string
	roadmapRoles  string
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapSkills, "skills", "s", "", "Comma-separated candidate skills (required)")
	roadmapCmd.Flags().StringVarP(&roadmapRole, "role", "r", "", "Target role name, matched case-insensitively (required)")
	roadmapCmd.Flags().StringVar(&roadmapProven, "proven", "", "Comma-separated skills already evidenced elsewhere; excluded from the plan")
	roadmapCmd.Flags().StringVar(&roadmapRoles, "roles", "", "Path to role catalogue JSON (embedded default when empty)")

	if err := roadmapCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := roadmapCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	_, cat, err := loadCatalogues("", roadmapRoles)
	if err != nil {
		return err
	}

	candidate := splitSkills(roadmapSkills)
	gaps := roles.Gaps(candidate, roadmapRole, cat)
	plan := roadmap.Build(gaps, candidate, gaps.Role, splitSkills(roadmapProven))

	jsonOutput, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap to JSON: %w", err)
	}
	fmt.Println(string(jsonOutput))
	return nil
}
