// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjy895/MegaTempQA/internal/generate"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate temporal QA batch files from the knowledge base",
	Long: `Generate runs the dataset pipeline: it loads the curated knowledge
base, synthesizes questions across all question types, filters them
through the quality validator, and writes numbered batch CSV files plus
a dataset_summary.json to the output directory.

A fixed --seed makes the run reproducible. Interrupting with Ctrl-C
finishes the in-flight write and stops cleanly.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generationConfig(cmd)

	gen, err := generate.New(cfg, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = gen.Run(ctx)
	return err
}

// generationConfig merges the config file with command-line overrides.
func generationConfig(cmd *cobra.Command) types.GenerationConfig {
	cfg := types.GenerationConfig{
		OutputDir:         viper.GetString("generation.output_dir"),
		NumBatches:        viper.GetInt("generation.num_batches"),
		QuestionsPerBatch: viper.GetInt("generation.questions_per_batch"),
		StartYear:         viper.GetInt("generation.start_year"),
		EndYear:           viper.GetInt("generation.end_year"),
		BatchWriteSize:    viper.GetInt("generation.batch_write_size"),
		QualityThreshold:  viper.GetFloat64("generation.quality_threshold"),
		DiversityFactor:   viper.GetFloat64("generation.diversity_factor"),
		Seed:              viper.GetInt64("generation.seed"),
	}

	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("batches") {
		cfg.NumBatches, _ = cmd.Flags().GetInt("batches")
	}
	if cmd.Flags().Changed("questions-per-batch") {
		cfg.QuestionsPerBatch, _ = cmd.Flags().GetInt("questions-per-batch")
	}
	if cmd.Flags().Changed("batch-write-size") {
		cfg.BatchWriteSize, _ = cmd.Flags().GetInt("batch-write-size")
	}
	if cmd.Flags().Changed("quality-threshold") {
		cfg.QualityThreshold, _ = cmd.Flags().GetFloat64("quality-threshold")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	return cfg
}

func init() {
	generateCmd.Flags().String("output-dir", "", "directory for batch CSV files")
	generateCmd.Flags().Int("batches", 0, "number of batch files to produce")
	generateCmd.Flags().Int("questions-per-batch", 0, "accepted questions per batch")
	generateCmd.Flags().Int("batch-write-size", 0, "in-memory buffer flush threshold")
	generateCmd.Flags().Float64("quality-threshold", 0, "minimum confidence score for accepted questions")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 seeds from the clock)")

	rootCmd.AddCommand(generateCmd)
}
