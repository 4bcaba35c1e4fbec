// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hjy895/MegaTempQA/internal/knowledge"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// personAttribute asks about a single attribute (birth year, nationality,
// field) of one randomly chosen person.
type personAttribute struct {
	window Window
}

func (s *personAttribute) Type() types.QuestionType { return types.AttributeEntity }

func (s *personAttribute) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	if len(kb.People) == 0 {
		return Skip("no people in knowledge base")
	}
	person := pick(rng, kb.People)
	tmpl := pick(rng, personAttributeTemplates)

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("ent_attr", batchID),
		Question:            fmt.Sprintf(tmpl.question, person.Name),
		Answer:              tmpl.answer(person),
		QuestionType:        types.AttributeEntity,
		Difficulty:          rng.Intn(3) + 1,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(person.Name),
		CountriesQuestion:   jsonNames(person.Country),
		HopCount:            1,
		ConfidenceScore:     0.95,
		Domain:              strings.ToLower(person.Field),
		ComplexityScore:     0.3,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// personComparison compares the birth years of two distinct people. The
// tie rule matches event comparisons: strict comparison, ties resolve to
// the second operand.
type personComparison struct {
	window Window
}

func (s *personComparison) Type() types.QuestionType { return types.ComparisonEntity }

func (s *personComparison) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	a, b, ok := samplePair(rng, kb.People)
	if !ok {
		return Skip("need two people for a comparison")
	}
	tmpl := pick(rng, personComparisonTemplates)

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("ent_comp", batchID),
		Question:            fmt.Sprintf(tmpl.question, a.Name, b.Name),
		Answer:              tmpl.answer(a, b),
		QuestionType:        types.ComparisonEntity,
		Difficulty:          rng.Intn(3) + 2,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(a.Name, b.Name),
		CountriesQuestion:   jsonNames(a.Country, b.Country),
		HopCount:            2,
		ConfidenceScore:     0.90,
		Domain:              "comparison",
		ComplexityScore:     0.6,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// timeComparison asks whether an organization already existed when an
// event occurred: yes iff the founding year does not exceed the event's
// start year.
type timeComparison struct {
	window Window
}

func (s *timeComparison) Type() types.QuestionType { return types.ComparisonTime }

func (s *timeComparison) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	if len(kb.Organizations) == 0 || len(kb.Events) == 0 {
		return Skip("need an organization and an event")
	}
	org := pick(rng, kb.Organizations)
	event := pick(rng, kb.Events)

	answer := "no"
	if org.InceptionYear <= event.Year {
		answer = "yes"
	}

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("time_comp", batchID),
		Question:            fmt.Sprintf("Did %s already exist when %s occurred?", org.Name, event.Name),
		Answer:              answer,
		QuestionType:        types.ComparisonTime,
		Difficulty:          rng.Intn(3) + 2,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(org.Name, event.Name),
		CountriesQuestion:   jsonNames(org.Country, event.Location),
		HopCount:            2,
		ConfidenceScore:     0.92,
		Domain:              "comparison",
		ComplexityScore:     0.6,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// countingFields is the fixed field set entity-count questions draw from.
var countingFields = []string{"Physics", "Politics", "Technology"}

// personCounting asks for the exact number of people in one field born
// within a random inclusive year range.
type personCounting struct{}

func (s *personCounting) Type() types.QuestionType { return types.CountingEntity }

func (s *personCounting) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	field := pick(rng, countingFields)
	startYear := 1850 + rng.Intn(101)
	endYear := startYear + 10 + rng.Intn(41)

	count := len(kb.PeopleInField(field, startYear, endYear))

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("ent_count", batchID),
		Question:            fmt.Sprintf("How many %s figures were born between %d and %d?", field, startYear, endYear),
		Answer:              strconv.Itoa(count),
		QuestionType:        types.CountingEntity,
		Difficulty:          rng.Intn(2) + 3,
		TemporalGranularity: "decade",
		TimeSpanStart:       fmt.Sprintf("%d-01-01", startYear),
		TimeSpanEnd:         fmt.Sprintf("%d-12-31", endYear),
		EntitiesQuestion:    emptyList,
		CountriesQuestion:   emptyList,
		HopCount:            2,
		ConfidenceScore:     0.98,
		Domain:              strings.ToLower(field),
		RequiresCalculation: true,
		ComplexityScore:     0.7,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}
