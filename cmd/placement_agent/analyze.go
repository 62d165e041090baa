package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-analyzer/internal/config"
	"github.com/jonathan/placement-analyzer/internal/logging"
	"github.com/jonathan/placement-analyzer/internal/observability"
	"github.com/jonathan/placement-analyzer/internal/pipeline"
	"github.com/jonathan/placement-analyzer/internal/schemas"
	"github.com/jonathan/placement-analyzer/internal/types"
	schemadocs "github.com/jonathan/placement-analyzer/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full candidate analysis pipeline",
	Long:  "Reads a candidate input JSON file (resume text plus collaborator-supplied skill evidence), runs the full scoring pipeline, and writes the analysis report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeInput      string
	analyzeOutput     string
	analyzeConfig     string
	analyzeVocab      string
	analyzeRoles      string
	analyzeTargetRole string
	analyzeTopN       int
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to candidate input JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output report JSON file (stdout when empty)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to CLI config JSON file")
	analyzeCmd.Flags().StringVar(&analyzeVocab, "vocab", "", "Path to skill vocabulary JSON (embedded default when empty)")
	analyzeCmd.Flags().StringVar(&analyzeRoles, "roles", "", "Path to role catalogue JSON (embedded default when empty)")
	analyzeCmd.Flags().StringVar(&analyzeTargetRole, "target-role", "", "Override the recommended role (case-insensitive)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "Ranked roles to include in the report")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report summary")

	if err := analyzeCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if analyzeConfig != "" {
		loaded, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}
	flagCfg := config.Config{
		VocabularyPath: analyzeVocab,
		RolesPath:      analyzeRoles,
		TopN:           analyzeTopN,
		Verbose:        analyzeVerbose,
	}
	cfg = flagCfg.MergeWithDefaults(cfg)

	report, err := analyzeFile(analyzeInput, cfg, analyzeTargetRole)
	if err != nil {
		return err
	}

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if analyzeOutput == "" {
		fmt.Println(string(jsonOutput))
	} else {
		outputDir := filepath.Dir(analyzeOutput)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
			}
		}
		if err := os.WriteFile(analyzeOutput, jsonOutput, 0644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", analyzeOutput, err)
		}
		fmt.Printf("Wrote analysis report to %s\n", analyzeOutput)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintReport(report)
	}
	return nil
}

// analyzeFile runs the pipeline for one candidate input file.
func analyzeFile(path string, cfg config.Config, targetRole string) (*types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	// Schema mismatches are warnings: the engine's contract is to degrade,
	// not fail, on malformed input.
	if err := schemas.Validate(schemadocs.CandidateInput, data); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate input: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: input %s failed schema validation: %v\n", path, err)
		}
	}

	in, err := types.DecodeCandidateInput(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input JSON %s: %w", path, err)
	}
	if targetRole != "" {
		in.TargetRole = targetRole
	}

	vocab, cat, err := loadCatalogues(cfg.VocabularyPath, cfg.RolesPath)
	if err != nil {
		return nil, err
	}

	engine := pipeline.New(vocab, cat,
		pipeline.WithTopN(cfg.TopN),
		pipeline.WithLogger(logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})),
	)
	report := engine.Run(in)
	return &report, nil
}
