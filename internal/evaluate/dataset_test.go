// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// writeDataset writes a batch CSV with n rows per question type.
func writeDataset(t *testing.T, qtypes []string, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch_001.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(types.QuestionFields))
	for _, qtype := range qtypes {
		for i := 0; i < n; i++ {
			q := &types.TemporalQuestion{
				ID:              fmt.Sprintf("%s_1_%012d", qtype, i),
				Question:        fmt.Sprintf("When did event %d of type %s occur?", i, qtype),
				Answer:          "1939",
				QuestionType:    types.QuestionType(qtype),
				Difficulty:      types.VeryEasy,
				HopCount:        1,
				ConfidenceScore: 0.95,
				Domain:          "military",
				BatchID:         1,
			}
			require.NoError(t, w.Write(q.Record()))
		}
	}
	w.Flush()
	require.NoError(t, w.Error())
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, []string{"attribute_event"}, 3)
	rows, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "attribute_event", rows[0].QuestionType)
	assert.Equal(t, "1939", rows[0].Answer)
	assert.Equal(t, 0.95, rows[0].Confidence)
	assert.Equal(t, 1, rows[0].Difficulty)
}

func TestLoadDatasetDropsUnusableRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch_001.csv")
	content := "question,answer,question_type\n" +
		"When did World War II occur?,1939,attribute_event\n" +
		"Too short,1939,attribute_event\n" +
		"When did the Moon Landing happen?,,attribute_event\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "When did World War II occur?", rows[0].Question)
}

func TestLoadDatasetMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch_001.csv")
	require.NoError(t, os.WriteFile(path, []byte("question,answer\nq,a\n"), 0o644))

	_, err := LoadDataset(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question_type")
}

func TestStratifiedSample(t *testing.T) {
	path := writeDataset(t, []string{"attribute_event", "comparison_event", "counting_event"}, 20)
	rows, err := LoadDataset(path)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	sample := StratifiedSample(rows, 30, rng)
	require.Len(t, sample, 30)

	perType := make(map[string]int)
	for _, row := range sample {
		perType[row.QuestionType]++
	}
	assert.Equal(t, map[string]int{
		"attribute_event":  10,
		"comparison_event": 10,
		"counting_event":   10,
	}, perType)
}

func TestStratifiedSampleCapsTypes(t *testing.T) {
	qtypes := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"}
	path := writeDataset(t, qtypes, 5)
	rows, err := LoadDataset(path)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	sample := StratifiedSample(rows, 25, rng)

	seen := make(map[string]bool)
	for _, row := range sample {
		seen[row.QuestionType] = true
	}
	assert.Len(t, seen, maxSampleTypes)
}

func TestFewShotExamplesFilters(t *testing.T) {
	path := writeDataset(t, []string{"attribute_event"}, 30)
	rows, err := LoadDataset(path)
	require.NoError(t, err)

	// Degrade half the rows below the example thresholds.
	for i := range rows {
		if i%2 == 0 {
			rows[i].Confidence = 0.5
		}
	}

	rng := rand.New(rand.NewSource(5))
	examples := FewShotExamples(rows, rng)
	require.NotEmpty(t, examples)
	assert.LessOrEqual(t, len(examples), examplesPerType)
	for _, ex := range examples {
		assert.NotEmpty(t, ex.Question)
		assert.Equal(t, "1939", ex.Answer)
	}
}

func TestBuildPrompt(t *testing.T) {
	zero := BuildPrompt("When did World War II occur?", nil)
	assert.Contains(t, zero, "1-3 words maximum")
	assert.Contains(t, zero, "Question: When did World War II occur?\nAnswer:")
	assert.NotContains(t, zero, "Examples")

	examples := []Example{
		{Question: "When did the Moon Landing occur?", Answer: "1969"},
		{Question: "Where did World War I take place?", Answer: "Europe"},
	}
	few := BuildPrompt("When did World War II occur?", examples)
	assert.Contains(t, few, "Examples:")
	assert.Contains(t, few, "Question: When did the Moon Landing occur?\nAnswer: 1969")
	assert.True(t, len(few) > len(zero))
}

func TestBuildInstructionPrompt(t *testing.T) {
	p := BuildInstructionPrompt("When did World War II occur?", []Example{
		{Question: "When did the Moon Landing occur?", Answer: "1969"},
	})
	assert.Contains(t, p, "helpful assistant")
	assert.Contains(t, p, "Q: When did the Moon Landing occur?\nA: 1969")
	assert.Contains(t, p, "Q: When did World War II occur?\nA:")
}
