// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// Verification holds the result of re-reading one batch file.
type Verification struct {
	File      string `json:"file" yaml:"file"`
	Exists    bool   `json:"exists" yaml:"exists"`
	HeaderOK  bool   `json:"header_ok" yaml:"header_ok"`
	Rows      int    `json:"rows" yaml:"rows"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
	Err       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// VerifyFile re-reads a batch CSV, checks its header against the
// canonical question field list, and counts data rows.
func VerifyFile(path string) Verification {
	v := Verification{File: path}

	info, err := os.Stat(path)
	if err != nil {
		v.Err = "file not found"
		return v
	}
	v.Exists = true
	v.SizeBytes = info.Size()

	f, err := os.Open(path)
	if err != nil {
		v.Err = err.Error()
		return v
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		v.Err = fmt.Sprintf("reading header: %v", err)
		return v
	}
	v.HeaderOK = slices.Equal(header, types.QuestionFields)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			v.Err = fmt.Sprintf("reading row %d: %v", v.Rows+1, err)
			return v
		}
		if len(record) != len(header) {
			v.Err = fmt.Sprintf("row %d has %d fields, want %d", v.Rows+1, len(record), len(header))
			return v
		}
		v.Rows++
	}
	return v
}

// VerifyDir verifies the numbered batch files batch_001.csv ..
// batch_<expected>.csv under dir, in order. Missing files are reported,
// not fatal.
func VerifyDir(dir string, expectedBatches int) []Verification {
	results := make([]Verification, 0, expectedBatches)
	for i := 1; i <= expectedBatches; i++ {
		path := filepath.Join(dir, BatchFileName(i))
		results = append(results, VerifyFile(path))
	}
	return results
}

// BatchFileName returns the canonical file name for a batch number, with
// the zero-padded three-digit convention shared by generation and
// verification.
func BatchFileName(batchID int) string {
	return fmt.Sprintf("batch_%03d.csv", batchID)
}
