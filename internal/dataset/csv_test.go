// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch_001.csv")
	w := NewCSVWriter(path)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.WriteHeader([]string{"id", "question", "answer"}))
	require.NoError(t, w.WriteBatch([][]string{
		{"q1", "When did World War II occur?", "1939"},
		{"q2", "Where did Moon Landing take place?", "United States"},
	}))
	require.NoError(t, w.WriteBatch(nil))
	require.NoError(t, w.WriteBatch([][]string{
		{"q3", "How long did World War I last?", "4 years"},
	}))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"id", "question", "answer"}, records[0])
	assert.Equal(t, "q3", records[3][0])
}

func TestCSVWriterWriteBeforeHeader(t *testing.T) {
	w := NewCSVWriter(filepath.Join(t.TempDir(), "batch_001.csv"))

	err := w.WriteBatch([][]string{{"q1", "question", "answer"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write before header")
}

func TestCSVWriterHeaderOnlyOnce(t *testing.T) {
	w := NewCSVWriter(filepath.Join(t.TempDir(), "batch_001.csv"))
	require.NoError(t, w.WriteHeader([]string{"id"}))

	err := w.WriteHeader([]string{"id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header already written")
	require.NoError(t, w.Close())
}

func TestCSVWriterCloseWithoutOpen(t *testing.T) {
	w := NewCSVWriter(filepath.Join(t.TempDir(), "never_opened.csv"))
	assert.NoError(t, w.Close())
	assert.NoFileExists(t, w.Path())
}
