package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-analyzer/internal/roles"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank roles against a skill list",
	Long:  "Scores every role in the catalogue against the given skills using weighted required-skill coverage and a CGPA modifier, and prints the top matches as JSON.",
	RunE:  runRecommend,
}

var (
	recommendSkills string
	recommendCGPA   float64
	recommendTopN   int
	recommendRoles  string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendSkills, "skills", "s", "", "Comma-separated candidate skills (required)")
	recommendCmd.Flags().Float64Var(&recommendCGPA, "cgpa", 0, "Candidate CGPA on a 10-point scale (0 = unknown)")
	recommendCmd.Flags().IntVar(&recommendTopN, "top-n", roles.DefaultTopN, "How many roles to return")
	recommendCmd.Flags().StringVar(&recommendRoles, "roles", "", "Path to role catalogue JSON (embedded default when empty)")

	if err := recommendCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	_, cat, err := loadCatalogues("", recommendRoles)
	if err != nil {
		return err
	}

	ranked := roles.Recommend(splitSkills(recommendSkills), recommendCGPA, recommendTopN, cat)
	jsonOutput, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations to JSON: %w", err)
	}
	fmt.Println(string(jsonOutput))
	return nil
}

// splitSkills turns a comma-separated flag value into a clean skill list.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
