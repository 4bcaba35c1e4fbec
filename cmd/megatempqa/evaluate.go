// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjy895/MegaTempQA/internal/evaluate"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate language models against a generated dataset",
	Long: `Evaluate draws a stratified sample from a batch CSV file, prompts each
configured model at every shot count from zero to --max-shots, and
scores the cleaned predictions with token F1, exact match, and answer
containment. Results, a run summary, and an analysis report are written
to the output directory.

Model access needs an OpenAI-compatible endpoint: set --api-key (or put
it in .secrets/openai-api-key) and optionally --base-url. Without
either, a deterministic offline heuristic stands in for every model.`,
	RunE: runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := evaluationConfig(cmd)

	eval, err := evaluate.New(cfg, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = eval.Run(ctx)
	return err
}

// evaluationConfig merges the config file, secrets, and command-line
// overrides.
func evaluationConfig(cmd *cobra.Command) types.EvaluationConfig {
	cfg := types.EvaluationConfig{
		DatasetPath:  viper.GetString("evaluation.dataset"),
		OutputDir:    viper.GetString("evaluation.output_dir"),
		SampleSize:   viper.GetInt("evaluation.sample_size"),
		MaxShots:     viper.GetInt("evaluation.max_shots"),
		Models:       viper.GetStringSlice("evaluation.models"),
		MaxNewTokens: viper.GetInt("evaluation.max_new_tokens"),
		Temperature:  viper.GetFloat64("evaluation.temperature"),
		BaseURL:      viper.GetString("evaluation.base_url"),
		APIKey:       viper.GetString("evaluation.api_key"),
		MaxRetries:   viper.GetInt("evaluation.max_retries"),
		Seed:         viper.GetInt64("evaluation.seed"),
	}

	if cmd.Flags().Changed("dataset") {
		cfg.DatasetPath, _ = cmd.Flags().GetString("dataset")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("sample-size") {
		cfg.SampleSize, _ = cmd.Flags().GetInt("sample-size")
	}
	if cmd.Flags().Changed("max-shots") {
		cfg.MaxShots, _ = cmd.Flags().GetInt("max-shots")
	}
	if cmd.Flags().Changed("models") {
		cfg.Models, _ = cmd.Flags().GetStringSlice("models")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}

	// Flag wins, then the config file value, then the secrets directory.
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	cfg.APIKey = secretDefault("openai-api-key", cfg.APIKey)

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.BaseURL = secretDefault("openai-base-url", cfg.BaseURL)
	return cfg
}

func init() {
	evaluateCmd.Flags().String("dataset", "", "batch CSV file to evaluate against")
	evaluateCmd.Flags().String("output-dir", "", "directory for results files")
	evaluateCmd.Flags().Int("sample-size", 0, "questions sampled per model")
	evaluateCmd.Flags().Int("max-shots", 0, "largest few-shot example count tested")
	evaluateCmd.Flags().StringSlice("models", nil, "model identifiers to evaluate")
	evaluateCmd.Flags().String("api-key", "", "API key for the model endpoint")
	evaluateCmd.Flags().String("base-url", "", "OpenAI-compatible endpoint URL")
	evaluateCmd.Flags().Int64("seed", 0, "random seed (0 seeds from the clock)")

	rootCmd.AddCommand(evaluateCmd)
}
