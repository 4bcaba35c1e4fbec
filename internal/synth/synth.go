// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth generates candidate temporal questions from the curated
// knowledge base. Each question type has one Synthesizer; randomness is
// used for entity and template selection only, and answer derivation is
// deterministic given the chosen entities.
package synth

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/hjy895/MegaTempQA/internal/knowledge"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// Result is the outcome of one synthesis attempt: either a candidate
// question or an explicit skip with a reason. Skips are normal control
// flow, not errors; the orchestrator counts them per type.
type Result struct {
	Question   *types.TemporalQuestion
	SkipReason string
}

// Ok wraps a candidate question.
func Ok(q *types.TemporalQuestion) Result {
	return Result{Question: q}
}

// Skip signals that no candidate was produced.
func Skip(reason string) Result {
	return Result{SkipReason: reason}
}

// Skipped reports whether the attempt produced no candidate.
func (r Result) Skipped() bool {
	return r.Question == nil
}

// Synthesizer produces candidate questions of a single type.
type Synthesizer interface {
	// Type identifies the question type this synthesizer generates.
	Type() types.QuestionType

	// Synthesize attempts to produce one question for the given batch.
	Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result
}

// Window is the nominal corpus time window embedded in generated span
// fields.
type Window struct {
	StartYear int
	EndYear   int
}

// SpanStart returns the window start as an ISO date string.
func (w Window) SpanStart() string {
	return fmt.Sprintf("%d-01-01", w.StartYear)
}

// SpanEnd returns the window end as an ISO date string.
func (w Window) SpanEnd() string {
	return fmt.Sprintf("%d-12-31", w.EndYear)
}

// Registry maps question types to their synthesizers.
type Registry struct {
	byType map[types.QuestionType]Synthesizer
}

// NewRegistry builds the full registry for the given window. Every type
// in types.AllQuestionTypes is covered: types without a genuine generator
// fall back to the placeholder synthesizer.
func NewRegistry(w Window) *Registry {
	r := &Registry{byType: make(map[types.QuestionType]Synthesizer)}

	r.register(&eventAttribute{window: w})
	r.register(&personAttribute{window: w})
	r.register(&timeAttribute{window: w})
	r.register(&eventComparison{window: w})
	r.register(&personComparison{window: w})
	r.register(&timeComparison{window: w})
	r.register(&eventCounting{})
	r.register(&personCounting{})
	r.register(&eventDuration{window: w})
	r.register(&eventSequence{window: w})
	r.register(&eventOverlap{window: w})

	for _, qt := range types.AllQuestionTypes {
		if _, ok := r.byType[qt]; !ok {
			r.register(&placeholder{qtype: qt, window: w})
		}
	}
	return r
}

func (r *Registry) register(s Synthesizer) {
	r.byType[s.Type()] = s
}

// Lookup returns the synthesizer for qt.
func (r *Registry) Lookup(qt types.QuestionType) (Synthesizer, bool) {
	s, ok := r.byType[qt]
	return s, ok
}

// questionID builds a run-unique identifier: a type prefix, the batch
// number, and a random suffix. The suffix is collision-resistant so IDs
// stay unique even if batches ever run concurrently.
func questionID(prefix string, batchID int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d_%s", prefix, batchID, suffix)
}

// jsonNames serializes a name list the way the CSV schema expects.
func jsonNames(names ...string) string {
	if names == nil {
		return emptyList
	}
	data, _ := json.Marshal(names)
	return string(data)
}

// emptyList is the serialized form of a question with no referenced names.
const emptyList = "[]"
