// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

const summaryFile = "dataset_summary.json"

// Summary is the dataset-level record written once per run. Downstream
// validation and evaluation tooling consumes it to locate batch files.
type Summary struct {
	Dataset         string       `json:"dataset"`
	CreatedAt       string       `json:"created_at"`
	TotalBatches    int          `json:"total_batches"`
	TotalQuestions  int          `json:"total_questions"`
	TargetQuestions int          `json:"target_questions"`
	DurationSeconds float64      `json:"duration_seconds"`
	Batches         []BatchStats `json:"batches"`
}

func newSummary(cfg types.GenerationConfig, stats []BatchStats, duration time.Duration) *Summary {
	total := 0
	for _, s := range stats {
		total += s.Questions
	}
	return &Summary{
		Dataset:         "MegaTempQA",
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		TotalBatches:    len(stats),
		TotalQuestions:  total,
		TargetQuestions: cfg.TotalQuestions(),
		DurationSeconds: duration.Seconds(),
		Batches:         stats,
	}
}

// Write stores the summary as dataset_summary.json under dir.
func (s *Summary) Write(dir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	path := filepath.Join(dir, summaryFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// ReadSummary loads a previously written dataset summary from dir.
func ReadSummary(dir string) (*Summary, error) {
	data, err := os.ReadFile(filepath.Join(dir, summaryFile))
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &s, nil
}
