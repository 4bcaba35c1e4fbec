// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjy895/MegaTempQA/internal/dataset"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// testConfig returns a small, seeded configuration writing to a temp dir.
func testConfig(t *testing.T) types.GenerationConfig {
	t.Helper()
	cfg := types.DefaultGenerationConfig()
	cfg.OutputDir = t.TempDir()
	cfg.NumBatches = 2
	cfg.QuestionsPerBatch = 32
	cfg.BatchWriteSize = 8
	cfg.Seed = 42
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.NumBatches = 0

	_, err := New(cfg, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid generation config")
}

func TestNewRejectsInvertedYearRange(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartYear = 2025
	cfg.EndYear = 1800

	_, err := New(cfg, io.Discard)
	require.Error(t, err)
}

func TestRunProducesBatchFiles(t *testing.T) {
	cfg := testConfig(t)
	g, err := New(cfg, io.Discard)
	require.NoError(t, err)

	summary, err := g.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "MegaTempQA", summary.Dataset)
	assert.Equal(t, cfg.NumBatches, summary.TotalBatches)
	assert.Equal(t, cfg.TotalQuestions(), summary.TargetQuestions)
	assert.Positive(t, summary.TotalQuestions)
	assert.LessOrEqual(t, summary.TotalQuestions, cfg.TotalQuestions())
	require.Len(t, summary.Batches, cfg.NumBatches)

	// Placeholder types never pass validation, so every batch has
	// rejections and undershoots its share of the target.
	for _, bs := range summary.Batches {
		assert.Positive(t, bs.Questions)
		assert.Positive(t, bs.Rejected)
		assert.Less(t, bs.Questions, cfg.QuestionsPerBatch)

		v := dataset.VerifyFile(bs.File)
		assert.True(t, v.Exists, "missing %s", bs.File)
		assert.True(t, v.HeaderOK, "bad header in %s", bs.File)
		assert.Equal(t, bs.Questions, v.Rows, "row count mismatch in %s", bs.File)
	}

	// The summary on disk matches the returned one.
	read, err := ReadSummary(cfg.OutputDir)
	require.NoError(t, err)
	assert.Equal(t, summary.TotalQuestions, read.TotalQuestions)
	assert.Equal(t, summary.Batches, read.Batches)
}

func TestRunRecordsCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.NumBatches = 1
	g, err := New(cfg, io.Discard)
	require.NoError(t, err)

	summary, err := g.Run(context.Background())
	require.NoError(t, err)

	catalog, err := dataset.OpenCatalog(cfg.OutputDir)
	require.NoError(t, err)
	defer catalog.Close()

	batches, err := catalog.LatestRunBatches(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, summary.Batches[0].Questions, batches[0].Questions)
	assert.Equal(t, filepath.Join(cfg.OutputDir, dataset.BatchFileName(1)), batches[0].File)
}

func TestRunSeededReproducibility(t *testing.T) {
	cfgA := testConfig(t)
	cfgB := testConfig(t)

	runQuestions := func(cfg types.GenerationConfig) []string {
		g, err := New(cfg, io.Discard)
		require.NoError(t, err)
		summary, err := g.Run(context.Background())
		require.NoError(t, err)

		var texts []string
		for _, bs := range summary.Batches {
			rows, err := readColumn(bs.File, "question")
			require.NoError(t, err)
			texts = append(texts, rows...)
		}
		return texts
	}

	// Question IDs contain a random suffix, but with the same seed the
	// question text sequence is identical across runs.
	assert.Equal(t, runQuestions(cfgA), runQuestions(cfgB))
}

func TestRunStopsAtQuestionsPerBatch(t *testing.T) {
	cfg := testConfig(t)
	cfg.NumBatches = 1
	cfg.QuestionsPerBatch = 5

	g, err := New(cfg, io.Discard)
	require.NoError(t, err)

	summary, err := g.Run(context.Background())
	require.NoError(t, err)

	// The first several question types always accept against the curated
	// base, so the cap is reached and the batch holds exactly the target.
	require.Len(t, summary.Batches, 1)
	assert.Equal(t, 5, summary.Batches[0].Questions)

	v := dataset.VerifyFile(summary.Batches[0].File)
	assert.Equal(t, 5, v.Rows)
}

func TestRunSmallTargetStillGenerates(t *testing.T) {
	cfg := testConfig(t)
	cfg.NumBatches = 1
	cfg.QuestionsPerBatch = 10

	g, err := New(cfg, io.Discard)
	require.NoError(t, err)

	summary, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Positive(t, summary.TotalQuestions)
	assert.LessOrEqual(t, summary.TotalQuestions, 10)
}

// readColumn returns the named column from a batch CSV, in row order.
func readColumn(path, name string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	col := -1
	for i, field := range records[0] {
		if field == name {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("no %q column in %s", name, path)
	}

	var out []string
	for _, record := range records[1:] {
		out = append(out, record[col])
	}
	return out, nil
}

func TestRunCancelledContext(t *testing.T) {
	cfg := testConfig(t)
	g, err := New(cfg, io.Discard)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
