// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"math/rand"

	"github.com/hjy895/MegaTempQA/internal/knowledge"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// placeholder stands in for question types without a genuine generator
// yet. It keeps the type enumeration flowing through the full pipeline;
// its fixed "Sample ..." text fails the content gate's word-count check,
// so placeholder types contribute no accepted rows.
type placeholder struct {
	qtype  types.QuestionType
	window Window
}

func (s *placeholder) Type() types.QuestionType { return s.qtype }

func (s *placeholder) Synthesize(_ *knowledge.Base, _ *rand.Rand, batchID int) Result {
	return Ok(&types.TemporalQuestion{
		ID:                  questionID("generic", batchID),
		Question:            fmt.Sprintf("Sample %s question", s.qtype),
		Answer:              "Sample answer",
		QuestionType:        s.qtype,
		Difficulty:          types.Medium,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    emptyList,
		CountriesQuestion:   emptyList,
		HopCount:            1,
		ConfidenceScore:     0.85,
		Domain:              "general",
		ComplexityScore:     0.5,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}
