// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjy895/MegaTempQA/internal/dataset"
	"github.com/hjy895/MegaTempQA/internal/generate"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect generated dataset files (verify, stats)",
	Long: `Dataset inspects the output of a generation run. Use subcommands to
verify batch file integrity or print run statistics.`,
}

// --- verify subcommand ---

var datasetVerifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Re-read batch files and check headers and row counts",
	Long: `Verify re-reads batch CSV files, checks each header against the
canonical field list, and counts rows. With a file argument it checks
that single file; otherwise it checks every batch the dataset summary
says the run produced. Outcomes are recorded in the dataset catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDatasetVerify,
}

func runDatasetVerify(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		dir = viper.GetString("generation.output_dir")
	}

	var results []dataset.Verification
	if len(args) == 1 {
		results = []dataset.Verification{dataset.VerifyFile(args[0])}
	} else {
		summary, err := generate.ReadSummary(dir)
		if err != nil {
			return fmt.Errorf("no dataset summary in %s (run generate first): %w", dir, err)
		}
		results = dataset.VerifyDir(dir, summary.TotalBatches)
	}

	if err := recordVerifications(dir, results); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record verification: %v\n", err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintf(os.Stdout, "%-36s %-8s %-10s %10s %12s\n",
		"FILE", "EXISTS", "HEADER", "ROWS", "SIZE")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))

	failed := 0
	for _, v := range results {
		status := "ok"
		if !v.HeaderOK {
			status = "BAD"
		}
		name := filepath.Base(v.File)
		fmt.Fprintf(os.Stdout, "%-36s %-8t %-10s %10d %12d\n",
			name, v.Exists, status, v.Rows, v.SizeBytes)
		if v.Err != "" {
			fmt.Fprintf(os.Stdout, "  error: %s\n", v.Err)
		}
		if !v.Exists || !v.HeaderOK || v.Err != "" {
			failed++
		}
	}

	fmt.Fprintf(os.Stdout, "\n%d file(s) checked, %d problem(s)\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed verification", failed)
	}
	return nil
}

func recordVerifications(dir string, results []dataset.Verification) error {
	catalog, err := dataset.OpenCatalog(dir)
	if err != nil {
		return err
	}
	defer catalog.Close()

	for _, v := range results {
		if err := catalog.RecordVerification(context.Background(), v); err != nil {
			return err
		}
	}
	return nil
}

// --- stats subcommand ---

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for the most recent generation run",
	Long: `Stats reads dataset_summary.json and the dataset catalog for the
output directory and prints per-batch accepted, skipped, and rejected
counts alongside the run totals.`,
	RunE: runDatasetStats,
}

func runDatasetStats(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		dir = viper.GetString("generation.output_dir")
	}

	summary, err := generate.ReadSummary(dir)
	if err != nil {
		return fmt.Errorf("no dataset summary in %s (run generate first): %w", dir, err)
	}

	fmt.Fprintf(os.Stdout, "Dataset:         %s\n", summary.Dataset)
	fmt.Fprintf(os.Stdout, "Created:         %s\n", summary.CreatedAt)
	fmt.Fprintf(os.Stdout, "Batches:         %d\n", summary.TotalBatches)
	fmt.Fprintf(os.Stdout, "Total questions: %d\n", summary.TotalQuestions)
	fmt.Fprintf(os.Stdout, "Duration:        %.1fs\n", summary.DurationSeconds)

	batches, err := latestRunBatches(dir)
	if err != nil {
		// The catalog is best-effort; the summary alone is still useful.
		fmt.Fprintf(os.Stderr, "warning: could not read catalog: %v\n", err)
		return nil
	}
	if len(batches) == 0 {
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n%-16s %12s %12s %12s\n", "FILE", "QUESTIONS", "SKIPPED", "REJECTED")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 56))
	for _, b := range batches {
		fmt.Fprintf(os.Stdout, "%-16s %12d %12d %12d\n", b.File, b.Questions, b.Skipped, b.Rejected)
	}
	return nil
}

func latestRunBatches(dir string) ([]dataset.BatchRecord, error) {
	catalog, err := dataset.OpenCatalog(dir)
	if err != nil {
		return nil, err
	}
	defer catalog.Close()
	return catalog.LatestRunBatches(context.Background())
}

func init() {
	datasetVerifyCmd.Flags().String("output-dir", "", "directory containing batch files")
	datasetVerifyCmd.Flags().Bool("json", false, "output verification results as JSON")
	datasetStatsCmd.Flags().String("output-dir", "", "directory containing batch files")

	datasetCmd.AddCommand(datasetVerifyCmd)
	datasetCmd.AddCommand(datasetStatsCmd)
	rootCmd.AddCommand(datasetCmd)
}
