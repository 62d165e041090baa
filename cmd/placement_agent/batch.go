package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/placement-analyzer/internal/logging"
	"github.com/jonathan/placement-analyzer/internal/pipeline"
	"github.com/jonathan/placement-analyzer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [input files...]",
	Short: "Analyze many candidate input files concurrently",
	Long:  "Runs the full analysis pipeline for every given candidate input JSON file and writes one report JSON per input into the output directory. The engine is pure, so candidates are processed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutDir      string
	batchVocab       string
	batchRoles       string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "reports", "Directory to write report JSON files into")
	batchCmd.Flags().StringVar(&batchVocab, "vocab", "", "Path to skill vocabulary JSON (embedded default when empty)")
	batchCmd.Flags().StringVar(&batchRoles, "roles", "", "Path to role catalogue JSON (embedded default when empty)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum candidates analyzed in parallel")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", batchOutDir, err)
	}

	// One catalogue snapshot and engine shared by every worker; the engine
	// holds no per-request state.
	vocab, cat, err := loadCatalogues(batchVocab, batchRoles)
	if err != nil {
		return err
	}
	engine := pipeline.New(vocab, cat, pipeline.WithLogger(logging.New(logging.Config{Level: "warn"})))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)

	for _, path := range args {
		path := path // per-iteration copy; required under the go 1.21 directive
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read input file %s: %w", path, err)
			}
			in, err := types.DecodeCandidateInput(data)
			if err != nil {
				return fmt.Errorf("failed to parse input JSON %s: %w", path, err)
			}

			report := engine.Run(in)
			jsonOutput, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal report for %s: %w", path, err)
			}

			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			outPath := filepath.Join(batchOutDir, base+".report.json")
			if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
				return fmt.Errorf("failed to write report to %s: %w", outPath, err)
			}
			fmt.Printf("%s -> %s\n", path, outPath)
			return nil
		})
	}

	return g.Wait()
}
