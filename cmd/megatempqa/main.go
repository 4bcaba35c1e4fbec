// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the megatempqa CLI.
// Each pipeline stage is a subcommand: generate builds the dataset,
// evaluate scores models against it, dataset inspects the output files,
// and knowledge inspects the curated knowledge base.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjy895/MegaTempQA/internal/secrets"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the megatempqa CLI.
var rootCmd = &cobra.Command{
	Use:   "megatempqa",
	Short: "Generate and evaluate large-scale temporal QA datasets",
	Long: `megatempqa builds temporal question-answering datasets from a curated
knowledge base of historical events, people, and organizations, and
evaluates language models against them.

Each pipeline stage is a subcommand: generate produces batch CSV files
and a dataset summary, evaluate scores models with zero- and few-shot
prompts, dataset verifies and summarizes the output files, and knowledge
inspects the curated knowledge base.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./megatempqa.yaml or ~/.config/megatempqa/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("megatempqa")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "megatempqa"))
		}
	}

	viper.SetEnvPrefix("MEGATEMPQA")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setConfigDefaults seeds viper with the stage defaults so config files
// only need to name the keys they change.
func setConfigDefaults() {
	gen := types.DefaultGenerationConfig()
	viper.SetDefault("generation.output_dir", gen.OutputDir)
	viper.SetDefault("generation.num_batches", gen.NumBatches)
	viper.SetDefault("generation.questions_per_batch", gen.QuestionsPerBatch)
	viper.SetDefault("generation.start_year", gen.StartYear)
	viper.SetDefault("generation.end_year", gen.EndYear)
	viper.SetDefault("generation.batch_write_size", gen.BatchWriteSize)
	viper.SetDefault("generation.quality_threshold", gen.QualityThreshold)
	viper.SetDefault("generation.diversity_factor", gen.DiversityFactor)
	viper.SetDefault("generation.seed", gen.Seed)

	eval := types.DefaultEvaluationConfig("")
	viper.SetDefault("evaluation.output_dir", eval.OutputDir)
	viper.SetDefault("evaluation.sample_size", eval.SampleSize)
	viper.SetDefault("evaluation.max_shots", eval.MaxShots)
	viper.SetDefault("evaluation.models", eval.Models)
	viper.SetDefault("evaluation.max_new_tokens", eval.MaxNewTokens)
	viper.SetDefault("evaluation.temperature", eval.Temperature)
	viper.SetDefault("evaluation.max_retries", eval.MaxRetries)
	viper.SetDefault("evaluation.seed", eval.Seed)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
