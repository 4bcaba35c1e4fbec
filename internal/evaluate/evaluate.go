// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate measures language models against a generated dataset:
// it draws a stratified sample, builds zero- and few-shot prompts,
// queries each configured model, and scores the cleaned predictions.
package evaluate

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// Result is one scored prediction.
type Result struct {
	Model           string
	Shots           int
	QuestionType    string
	Domain          string
	Question        string
	TrueAnswer      string
	PredictedAnswer string
	Metrics
}

// resultFields is the results CSV column order.
var resultFields = []string{
	"model", "shots", "question_type", "domain", "question",
	"true_answer", "predicted_answer",
	"precision", "recall", "f1", "exact_match", "containment",
}

func (r Result) record() []string {
	return []string{
		r.Model,
		strconv.Itoa(r.Shots),
		r.QuestionType,
		r.Domain,
		r.Question,
		r.TrueAnswer,
		r.PredictedAnswer,
		strconv.FormatFloat(r.Precision, 'f', 3, 64),
		strconv.FormatFloat(r.Recall, 'f', 3, 64),
		strconv.FormatFloat(r.F1, 'f', 3, 64),
		strconv.FormatFloat(r.ExactMatch, 'f', 3, 64),
		strconv.FormatFloat(r.Containment, 'f', 3, 64),
	}
}

// ModelFactory builds the Model client for a configured model name.
type ModelFactory func(name string) Model

// Evaluator runs the evaluation loop for one dataset.
type Evaluator struct {
	cfg      types.EvaluationConfig
	rng      *rand.Rand
	out      io.Writer
	newModel ModelFactory
}

// New builds an evaluator from cfg. When no API key or base URL is
// configured the offline heuristic model stands in for every model name.
func New(cfg types.EvaluationConfig, out io.Writer) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Evaluator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		out: out,
	}
	e.newModel = func(name string) Model {
		if cfg.APIKey == "" && cfg.BaseURL == "" {
			return NewFallbackModel(seed)
		}
		return NewOpenAIModel(name, cfg.APIKey, cfg.BaseURL, cfg.Temperature, cfg.MaxRetries)
	}
	return e, nil
}

// SetModelFactory replaces the model construction hook; tests use this to
// inject scripted models.
func (e *Evaluator) SetModelFactory(f ModelFactory) {
	e.newModel = f
}

// Run evaluates every configured model at every shot count and writes the
// results CSV, summary JSON, and analysis report.
func (e *Evaluator) Run(ctx context.Context) ([]Result, error) {
	rows, err := LoadDataset(e.cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no usable rows", e.cfg.DatasetPath)
	}

	sample := StratifiedSample(rows, e.cfg.SampleSize, e.rng)
	examples := FewShotExamples(rows, e.rng)

	fmt.Fprintf(e.out, "Evaluation sample: %d questions, %d few-shot examples\n", len(sample), len(examples))

	var results []Result
	for _, modelName := range e.cfg.Models {
		fmt.Fprintf(e.out, "\nEvaluating %s\n", modelName)
		model := e.newModel(modelName)
		results = append(results, e.evaluateModel(ctx, model, modelName, sample, examples)...)
	}

	if len(results) > 0 {
		if err := e.saveResults(results); err != nil {
			return nil, err
		}
		Report(results, e.out)
		if err := WriteReport(results, filepath.Join(e.cfg.OutputDir, "evaluation_report.txt")); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// evaluateModel scores one model at every shot count. A failed model call
// skips that question and continues; the miss is reported, not fatal.
func (e *Evaluator) evaluateModel(ctx context.Context, model Model, modelName string, sample []Row, examples []Example) []Result {
	var results []Result

	for shots := 0; shots <= e.cfg.MaxShots; shots++ {
		fmt.Fprintf(e.out, "  %d-shot...\n", shots)
		shotExamples := examples
		if shots < len(examples) {
			shotExamples = examples[:shots]
		}
		if shots == 0 {
			shotExamples = nil
		}

		shotTotal := 0.0
		shotCount := 0
		for _, row := range sample {
			prompt := BuildPrompt(row.Question, shotExamples)

			raw, err := model.Generate(ctx, prompt, e.cfg.MaxNewTokens)
			if err != nil {
				fmt.Fprintf(e.out, "    warning: %v\n", err)
				continue
			}
			pred := CleanResponse(raw)

			result := Result{
				Model:           modelName,
				Shots:           shots,
				QuestionType:    row.QuestionType,
				Domain:          row.Domain,
				Question:        row.Question,
				TrueAnswer:      row.Answer,
				PredictedAnswer: pred,
				Metrics:         Score(pred, row.Answer),
			}
			results = append(results, result)
			shotTotal += result.F1
			shotCount++
		}

		if shotCount > 0 {
			fmt.Fprintf(e.out, "    %d-shot F1: %.3f\n", shots, shotTotal/float64(shotCount))
		}
	}
	return results
}

// saveResults writes the detailed results CSV and the run summary JSON,
// both timestamped so repeated runs never overwrite each other.
func (e *Evaluator) saveResults(results []Result) error {
	timestamp := time.Now().Format("20060102_150405")

	resultsPath := filepath.Join(e.cfg.OutputDir, fmt.Sprintf("evaluation_results_%s.csv", timestamp))
	f, err := os.Create(resultsPath)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(resultFields); err != nil {
		f.Close()
		return fmt.Errorf("writing results header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(r.record()); err != nil {
			f.Close()
			return fmt.Errorf("writing result row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing results: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing results file: %w", err)
	}

	models := make(map[string]bool)
	for _, r := range results {
		models[r.Model] = true
	}
	modelNames := make([]string, 0, len(models))
	for m := range models {
		modelNames = append(modelNames, m)
	}

	summary := map[string]any{
		"evaluation_date":   timestamp,
		"dataset":           e.cfg.DatasetPath,
		"models_evaluated":  modelNames,
		"total_predictions": len(results),
		"sample_size":       e.cfg.SampleSize,
		"max_shots":         e.cfg.MaxShots,
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling evaluation summary: %w", err)
	}
	summaryPath := filepath.Join(e.cfg.OutputDir, fmt.Sprintf("evaluation_summary_%s.json", timestamp))
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return fmt.Errorf("writing evaluation summary: %w", err)
	}

	fmt.Fprintf(e.out, "\nResults saved to %s\n", resultsPath)
	fmt.Fprintf(e.out, "Summary saved to %s\n", summaryPath)
	return nil
}
