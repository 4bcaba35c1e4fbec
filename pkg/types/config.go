// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GenerationConfig holds settings for the dataset generation stage.
type GenerationConfig struct {
	// OutputDir is the directory for batch CSV files; created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir" validate:"required"`

	// NumBatches is the number of batch files to produce.
	NumBatches int `json:"num_batches" yaml:"num_batches" validate:"min=1"`

	// QuestionsPerBatch caps accepted questions per batch.
	QuestionsPerBatch int `json:"questions_per_batch" yaml:"questions_per_batch" validate:"min=1"`

	// StartYear and EndYear bound the nominal time window embedded in
	// generated span fields.
	StartYear int `json:"start_year" yaml:"start_year" validate:"min=1"`
	EndYear   int `json:"end_year" yaml:"end_year" validate:"min=1,gtfield=StartYear"`

	// BatchWriteSize is the in-memory buffer flush threshold.
	BatchWriteSize int `json:"batch_write_size" yaml:"batch_write_size" validate:"min=1"`

	// QualityThreshold is the validator's minimum confidence score.
	QualityThreshold float64 `json:"quality_threshold" yaml:"quality_threshold" validate:"min=0,max=1"`

	// DiversityFactor is reserved; recognized and range-checked but not
	// consulted by generation.
	DiversityFactor float64 `json:"diversity_factor" yaml:"diversity_factor" validate:"min=0,max=1"`

	// Seed initializes the random source. Zero means seed from the clock.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultGenerationConfig returns the configuration used when no file or
// flags override it.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		OutputDir:         "data/generated",
		NumBatches:        5,
		QuestionsPerBatch: 50_000_000,
		StartYear:         1800,
		EndYear:           2025,
		BatchWriteSize:    100_000,
		QualityThreshold:  0.8,
		DiversityFactor:   0.9,
	}
}

// TotalQuestions is the nominal run target across all batches.
func (c GenerationConfig) TotalQuestions() int {
	return c.NumBatches * c.QuestionsPerBatch
}

// EvaluationConfig holds settings for the model evaluation stage.
type EvaluationConfig struct {
	// DatasetPath is the batch CSV file to evaluate against.
	DatasetPath string `json:"dataset" yaml:"dataset" validate:"required"`

	// OutputDir is the directory for results files; created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir" validate:"required"`

	// SampleSize is the number of questions drawn for each model.
	SampleSize int `json:"sample_size" yaml:"sample_size" validate:"min=1"`

	// MaxShots is the largest few-shot example count tested (0..MaxShots).
	MaxShots int `json:"max_shots" yaml:"max_shots" validate:"min=0"`

	// Models lists the model identifiers to evaluate.
	Models []string `json:"models" yaml:"models" validate:"min=1"`

	// MaxNewTokens bounds each model response.
	MaxNewTokens int `json:"max_new_tokens" yaml:"max_new_tokens" validate:"min=1"`

	// Temperature is the sampling temperature passed to the model.
	Temperature float64 `json:"temperature" yaml:"temperature" validate:"min=0,max=2"`

	// BaseURL points at an OpenAI-compatible endpoint. Empty uses the
	// default API host.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey authenticates against the endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed model calls.
	MaxRetries int `json:"max_retries" yaml:"max_retries" validate:"min=0"`

	// Seed initializes sampling and the offline fallback model. Zero means
	// seed from the clock.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultModels is the model list used when none is configured.
var DefaultModels = []string{
	"distilgpt2",
	"microsoft/DialoGPT-medium",
	"google/flan-t5-base",
	"facebook/opt-350m",
	"microsoft/phi-2",
}

// DefaultEvaluationConfig returns the evaluation defaults for datasetPath.
func DefaultEvaluationConfig(datasetPath string) EvaluationConfig {
	return EvaluationConfig{
		DatasetPath:  datasetPath,
		OutputDir:    "results",
		SampleSize:   50,
		MaxShots:     3,
		Models:       append([]string(nil), DefaultModels...),
		MaxNewTokens: 30,
		Temperature:  0.3,
		MaxRetries:   3,
	}
}

var validate = validator.New()

// Validate checks the generation configuration. Violations are surfaced
// before any generation begins.
func (c GenerationConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid generation config: %w", err)
	}
	return nil
}

// Validate checks the evaluation configuration.
func (c EvaluationConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid evaluation config: %w", err)
	}
	return nil
}

// PipelineConfig groups the stage configurations read from megatempqa.yaml.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Evaluation EvaluationConfig `json:"evaluation" yaml:"evaluation"`
}
