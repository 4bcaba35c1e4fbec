// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate drives dataset generation: it distributes a per-batch
// question target across the type registry, gates every candidate through
// the validator, and writes accepted questions to per-batch CSV files
// through a bounded in-memory buffer.
package generate

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hjy895/MegaTempQA/internal/dataset"
	"github.com/hjy895/MegaTempQA/internal/knowledge"
	"github.com/hjy895/MegaTempQA/internal/synth"
	"github.com/hjy895/MegaTempQA/internal/validate"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// Generator owns the generation run: the read-only knowledge base, the
// synthesizer registry, the validator, and the seeded random source
// threaded through every synthesis call.
type Generator struct {
	cfg       types.GenerationConfig
	kb        *knowledge.Base
	registry  *synth.Registry
	validator *validate.Validator
	rng       *rand.Rand
	out       io.Writer
}

// New builds a generator from cfg. The output directory is created if
// absent; configuration violations surface here, before any generation.
func New(cfg types.GenerationConfig, out io.Writer) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg:       cfg,
		kb:        knowledge.Load(out),
		registry:  synth.NewRegistry(synth.Window{StartYear: cfg.StartYear, EndYear: cfg.EndYear}),
		validator: validate.New(cfg.QualityThreshold),
		rng:       rand.New(rand.NewSource(seed)),
		out:       out,
	}

	fmt.Fprintf(out, "Target: %d questions across %d batches\n", cfg.TotalQuestions(), cfg.NumBatches)
	return g, nil
}

// BatchStats summarizes one generated batch.
type BatchStats struct {
	BatchID   int    `json:"batch_id" yaml:"batch_id"`
	File      string `json:"file" yaml:"file"`
	Questions int    `json:"questions" yaml:"questions"`
	Skipped   int    `json:"skipped" yaml:"skipped"`
	Rejected  int    `json:"rejected" yaml:"rejected"`
}

// Run generates every batch, writes the dataset summary, and records the
// run in the catalog. Sink I/O failures abort the run; synthesis and
// validation failures are counted and absorbed.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	stats := make([]BatchStats, 0, g.cfg.NumBatches)
	for batchID := 1; batchID <= g.cfg.NumBatches; batchID++ {
		fmt.Fprintf(g.out, "\nGenerating batch %d/%d\n", batchID, g.cfg.NumBatches)

		bs, err := g.generateBatch(ctx, batchID)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", batchID, err)
		}
		stats = append(stats, bs)
	}

	duration := time.Since(start)
	summary := newSummary(g.cfg, stats, duration)
	if err := summary.Write(g.cfg.OutputDir); err != nil {
		return nil, err
	}

	if err := g.recordRun(ctx, start, duration, stats); err != nil {
		// The dataset itself is complete; a catalog failure is reported
		// but does not fail the run.
		fmt.Fprintf(g.out, "warning: catalog update failed: %v\n", err)
	}

	fmt.Fprintf(g.out, "\nGeneration complete: %d questions in %s\n", summary.TotalQuestions, duration.Round(time.Millisecond))
	return summary, nil
}

// generateBatch produces one batch file. The accepted-question counter is
// capped at QuestionsPerBatch; the instant it is reached both loops stop.
func (g *Generator) generateBatch(ctx context.Context, batchID int) (BatchStats, error) {
	path := filepath.Join(g.cfg.OutputDir, dataset.BatchFileName(batchID))
	writer := dataset.NewCSVWriter(path)
	if err := writer.WriteHeader(types.QuestionFields); err != nil {
		return BatchStats{}, err
	}
	defer writer.Close()

	stats := BatchStats{BatchID: batchID, File: path}

	// Each type gets an equal integer share of the batch; the remainder
	// is dropped, so a batch may undershoot by up to len(types)-1. Targets
	// below the type count floor the share at one attempt, and the
	// accepted-question cap below still bounds the batch.
	perType := g.cfg.QuestionsPerBatch / len(types.AllQuestionTypes)
	if perType == 0 {
		perType = 1
	}

	// Buffer rows, not questions, so accepted records are released as
	// soon as they are serialized.
	buffer := make([][]string, 0, g.cfg.BatchWriteSize)

typeLoop:
	for _, qtype := range types.AllQuestionTypes {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		synthesizer, ok := g.registry.Lookup(qtype)
		if !ok {
			continue
		}

		accepted := 0
		for attempt := 0; attempt < perType; attempt++ {
			result := synthesizer.Synthesize(g.kb, g.rng, batchID)
			if result.Skipped() {
				stats.Skipped++
				continue
			}
			if !g.validator.Validate(result.Question) {
				stats.Rejected++
				continue
			}

			buffer = append(buffer, result.Question.Record())
			stats.Questions++
			accepted++

			if len(buffer) >= g.cfg.BatchWriteSize {
				if err := writer.WriteBatch(buffer); err != nil {
					return stats, err
				}
				buffer = buffer[:0]
			}

			if stats.Questions >= g.cfg.QuestionsPerBatch {
				break typeLoop
			}
		}

		fmt.Fprintf(g.out, "  %-22s %d accepted\n", qtype, accepted)
	}

	if err := writer.WriteBatch(buffer); err != nil {
		return stats, err
	}
	if err := writer.Close(); err != nil {
		return stats, err
	}

	fmt.Fprintf(g.out, "Saved %s (%d questions, %d skipped, %d rejected)\n",
		path, stats.Questions, stats.Skipped, stats.Rejected)
	return stats, nil
}

// recordRun stores the run in the SQLite catalog under the output dir.
func (g *Generator) recordRun(ctx context.Context, start time.Time, duration time.Duration, stats []BatchStats) error {
	catalog, err := dataset.OpenCatalog(g.cfg.OutputDir)
	if err != nil {
		return err
	}
	defer catalog.Close()

	records := make([]dataset.BatchRecord, len(stats))
	for i, s := range stats {
		records[i] = dataset.BatchRecord{
			BatchID:   s.BatchID,
			File:      s.File,
			Questions: s.Questions,
			Skipped:   s.Skipped,
			Rejected:  s.Rejected,
		}
	}
	_, err = catalog.RecordRun(ctx, start, duration, g.cfg.Seed, records)
	return err
}
