// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// writeBatchFile writes a batch CSV with the canonical header and n rows.
func writeBatchFile(t *testing.T, path string, n int) {
	t.Helper()
	w := NewCSVWriter(path)
	require.NoError(t, w.WriteHeader(types.QuestionFields))

	rows := make([][]string, n)
	for i := range rows {
		q := &types.TemporalQuestion{
			ID:              "evt_attr_1_abc123def456",
			Question:        "When did World War II occur?",
			Answer:          "1939",
			QuestionType:    types.AttributeEvent,
			Difficulty:      types.Easy,
			HopCount:        1,
			ConfidenceScore: 0.95,
			BatchID:         1,
		}
		rows[i] = q.Record()
	}
	require.NoError(t, w.WriteBatch(rows))
	require.NoError(t, w.Close())
}

func TestVerifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, BatchFileName(1))
	writeBatchFile(t, path, 3)

	v := VerifyFile(path)
	assert.True(t, v.Exists)
	assert.True(t, v.HeaderOK)
	assert.Equal(t, 3, v.Rows)
	assert.Positive(t, v.SizeBytes)
	assert.Empty(t, v.Err)
}

func TestVerifyFileMissing(t *testing.T) {
	v := VerifyFile(filepath.Join(t.TempDir(), "batch_001.csv"))
	assert.False(t, v.Exists)
	assert.Equal(t, "file not found", v.Err)
}

func TestVerifyFileWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch_001.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,question\nq1,When did it happen?\n"), 0o644))

	v := VerifyFile(path)
	assert.True(t, v.Exists)
	assert.False(t, v.HeaderOK)
	assert.Equal(t, 1, v.Rows)
}

func TestVerifyDir(t *testing.T) {
	dir := t.TempDir()
	writeBatchFile(t, filepath.Join(dir, BatchFileName(1)), 2)
	// batch_002.csv deliberately missing.
	writeBatchFile(t, filepath.Join(dir, BatchFileName(3)), 5)

	results := VerifyDir(dir, 3)
	require.Len(t, results, 3)
	assert.True(t, results[0].Exists)
	assert.False(t, results[1].Exists)
	assert.True(t, results[2].Exists)
	assert.Equal(t, 5, results[2].Rows)
}

func TestBatchFileName(t *testing.T) {
	assert.Equal(t, "batch_001.csv", BatchFileName(1))
	assert.Equal(t, "batch_042.csv", BatchFileName(42))
	assert.Equal(t, "batch_100.csv", BatchFileName(100))
}
