// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset persists generated questions: a buffered CSV sink for
// batch files and a SQLite catalog of runs and batches.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter appends rows of text fields to one batch file. WriteHeader
// must precede any WriteBatch call; Close is mandatory and safe to call
// even if the sink was never opened.
type CSVWriter struct {
	path string
	file *os.File
	w    *csv.Writer
}

// NewCSVWriter prepares a writer for path without opening the file.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the sink's file path.
func (c *CSVWriter) Path() string {
	return c.path
}

// WriteHeader creates the file and writes the header row. It must be
// called exactly once, before any WriteBatch.
func (c *CSVWriter) WriteHeader(fields []string) error {
	if c.file != nil {
		return fmt.Errorf("header already written for %s", c.path)
	}
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", c.path, err)
	}
	c.file = f
	c.w = csv.NewWriter(f)
	if err := c.w.Write(fields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// WriteBatch appends rows to the file. Calling it before WriteHeader is a
// programming error and fails loudly rather than dropping data.
func (c *CSVWriter) WriteBatch(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	if c.w == nil {
		return fmt.Errorf("write before header on %s", c.path)
	}
	for _, row := range rows {
		if err := c.w.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", c.path, err)
		}
	}
	c.w.Flush()
	return c.w.Error()
}

// Close flushes and closes the file. A writer that was never opened
// closes as a no-op.
func (c *CSVWriter) Close() error {
	if c.file == nil {
		return nil
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("flushing %s: %w", c.path, err)
	}
	err := c.file.Close()
	c.file = nil
	c.w = nil
	if err != nil {
		return fmt.Errorf("closing %s: %w", c.path, err)
	}
	return nil
}
