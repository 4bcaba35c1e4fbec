// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Catalog records generation runs and their batch files in a SQLite
// database at <outputDir>/index/catalog.db, so downstream tooling can
// discover batch files without rescanning the directory.
type Catalog struct {
	db        *sql.DB
	outputDir string
}

// OpenCatalog opens or creates the catalog database for outputDir and
// creates the schema if it does not exist.
func OpenCatalog(outputDir string) (*Catalog, error) {
	dbDir := filepath.Join(outputDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	c := &Catalog{db: db, outputDir: outputDir}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			duration_seconds REAL NOT NULL,
			num_batches INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			seed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS batches (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			batch_id INTEGER NOT NULL,
			file TEXT NOT NULL,
			questions INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			rejected INTEGER NOT NULL,
			PRIMARY KEY (run_id, batch_id)
		)`,
		`CREATE TABLE IF NOT EXISTS verification (
			file TEXT PRIMARY KEY,
			verified_at TEXT NOT NULL,
			rows INTEGER NOT NULL,
			header_ok INTEGER NOT NULL,
			size_bytes INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BatchRecord is one batch's catalog entry.
type BatchRecord struct {
	BatchID   int    `json:"batch_id" yaml:"batch_id"`
	File      string `json:"file" yaml:"file"`
	Questions int    `json:"questions" yaml:"questions"`
	Skipped   int    `json:"skipped" yaml:"skipped"`
	Rejected  int    `json:"rejected" yaml:"rejected"`
}

// RecordRun stores a completed run and its batches in one transaction and
// returns the new run's id.
func (c *Catalog) RecordRun(ctx context.Context, startedAt time.Time, duration time.Duration, seed int64, batches []BatchRecord) (int64, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	total := 0
	for _, b := range batches {
		total += b.Questions
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, duration_seconds, num_batches, total_questions, seed)
		 VALUES (?, ?, ?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339), duration.Seconds(), len(batches), total, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO batches (run_id, batch_id, file, questions, skipped, rejected)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing batch insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range batches {
		if _, err := stmt.ExecContext(ctx, runID, b.BatchID, b.File, b.Questions, b.Skipped, b.Rejected); err != nil {
			return 0, fmt.Errorf("inserting batch %d: %w", b.BatchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// LatestRunBatches returns the batch records of the most recent run, or
// nil if no run has been recorded.
func (c *Catalog) LatestRunBatches(ctx context.Context) ([]BatchRecord, error) {
	var runID int64
	err := c.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up latest run: %w", err)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT batch_id, file, questions, skipped, rejected
		 FROM batches WHERE run_id = ? ORDER BY batch_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying batches: %w", err)
	}
	defer rows.Close()

	var batches []BatchRecord
	for rows.Next() {
		var b BatchRecord
		if err := rows.Scan(&b.BatchID, &b.File, &b.Questions, &b.Skipped, &b.Rejected); err != nil {
			return nil, fmt.Errorf("scanning batch row: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// RecordVerification upserts a batch file's verification result.
func (c *Catalog) RecordVerification(ctx context.Context, v Verification) error {
	headerOK := 0
	if v.HeaderOK {
		headerOK = 1
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO verification (file, verified_at, rows, header_ok, size_bytes)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(file) DO UPDATE SET
			verified_at=excluded.verified_at, rows=excluded.rows,
			header_ok=excluded.header_ok, size_bytes=excluded.size_bytes`,
		v.File, time.Now().UTC().Format(time.RFC3339), v.Rows, headerOK, v.SizeBytes,
	)
	if err != nil {
		return fmt.Errorf("recording verification for %s: %w", v.File, err)
	}
	return nil
}
