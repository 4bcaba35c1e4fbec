// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/hjy895/MegaTempQA/internal/knowledge"
	"github.com/hjy895/MegaTempQA/pkg/types"
)

// eventAttribute asks about a single attribute (year, location) of one
// randomly chosen event.
type eventAttribute struct {
	window Window
}

func (s *eventAttribute) Type() types.QuestionType { return types.AttributeEvent }

func (s *eventAttribute) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	if len(kb.Events) == 0 {
		return Skip("no events in knowledge base")
	}
	event := pick(rng, kb.Events)
	tmpl := pick(rng, eventAttributeTemplates)

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("evt_attr", batchID),
		Question:            fmt.Sprintf(tmpl.question, event.Name),
		Answer:              tmpl.answer(event),
		QuestionType:        types.AttributeEvent,
		Difficulty:          rng.Intn(3) + 1,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(event.Name),
		CountriesQuestion:   jsonNames(event.Location),
		HopCount:            1,
		ConfidenceScore:     0.95,
		Domain:              event.Domain,
		ComplexityScore:     0.3,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// eventComparison compares the years of two distinct events, sampled
// without replacement.
type eventComparison struct {
	window Window
}

func (s *eventComparison) Type() types.QuestionType { return types.ComparisonEvent }

func (s *eventComparison) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	a, b, ok := samplePair(rng, kb.Events)
	if !ok {
		return Skip("need two events for a comparison")
	}
	tmpl := pick(rng, eventComparisonTemplates)

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("evt_comp", batchID),
		Question:            fmt.Sprintf(tmpl.question, a.Name, b.Name),
		Answer:              tmpl.answer(a, b),
		QuestionType:        types.ComparisonEvent,
		Difficulty:          rng.Intn(3) + 2,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(a.Name, b.Name),
		CountriesQuestion:   jsonNames(a.Location, b.Location),
		HopCount:            2,
		ConfidenceScore:     0.90,
		Domain:              "comparison",
		ComplexityScore:     0.6,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// countingDomains is the fixed domain set counting questions draw from.
var countingDomains = []string{"military", "science", "politics"}

// eventCounting asks for the exact number of events of one domain within
// a random inclusive year range.
type eventCounting struct{}

func (s *eventCounting) Type() types.QuestionType { return types.CountingEvent }

func (s *eventCounting) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	domain := pick(rng, countingDomains)
	startYear := 1900 + rng.Intn(101)
	endYear := startYear + 10 + rng.Intn(41)

	count := len(kb.EventsInDomain(domain, startYear, endYear))

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("evt_count", batchID),
		Question:            fmt.Sprintf(pick(rng, countingTemplates), domain, startYear, endYear),
		Answer:              strconv.Itoa(count),
		QuestionType:        types.CountingEvent,
		Difficulty:          rng.Intn(2) + 3,
		TemporalGranularity: "decade",
		TimeSpanStart:       fmt.Sprintf("%d-01-01", startYear),
		TimeSpanEnd:         fmt.Sprintf("%d-12-31", endYear),
		EntitiesQuestion:    emptyList,
		CountriesQuestion:   emptyList,
		HopCount:            2,
		ConfidenceScore:     0.98,
		Domain:              domain,
		RequiresCalculation: true,
		ComplexityScore:     0.7,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// timeAttribute asks which event of a domain happened in a given year;
// the year is read off a randomly chosen event so the answer is unique
// within the curated base.
type timeAttribute struct {
	window Window
}

func (s *timeAttribute) Type() types.QuestionType { return types.AttributeTime }

func (s *timeAttribute) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	if len(kb.Events) == 0 {
		return Skip("no events in knowledge base")
	}
	event := pick(rng, kb.Events)

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("time_attr", batchID),
		Question:            fmt.Sprintf("Which %s event happened in %d?", event.Domain, event.Year),
		Answer:              event.Name,
		QuestionType:        types.AttributeTime,
		Difficulty:          rng.Intn(2) + 2,
		TemporalGranularity: "year",
		TimeSpanStart:       fmt.Sprintf("%d-01-01", event.Year),
		TimeSpanEnd:         fmt.Sprintf("%d-12-31", event.Year),
		EntitiesQuestion:    jsonNames(event.Name),
		CountriesQuestion:   jsonNames(event.Location),
		HopCount:            1,
		ConfidenceScore:     0.92,
		Domain:              event.Domain,
		ComplexityScore:     0.4,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// eventDuration asks how long a ranged event lasted. Point events cannot
// answer the question and are skipped.
type eventDuration struct {
	window Window
}

func (s *eventDuration) Type() types.QuestionType { return types.DurationEstimation }

func (s *eventDuration) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	if len(kb.Events) == 0 {
		return Skip("no events in knowledge base")
	}
	event := pick(rng, kb.Events)
	if !event.Ranged() {
		return Skip("point event has no duration")
	}
	years := event.EndYear - event.Year

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("evt_dur", batchID),
		Question:            fmt.Sprintf(pick(rng, durationTemplates), event.Name),
		Answer:              fmt.Sprintf("%d years", years),
		QuestionType:        types.DurationEstimation,
		Difficulty:          rng.Intn(3) + 2,
		TemporalGranularity: "year",
		TimeSpanStart:       fmt.Sprintf("%d-01-01", event.Year),
		TimeSpanEnd:         fmt.Sprintf("%d-12-31", event.EndYear),
		EntitiesQuestion:    jsonNames(event.Name),
		CountriesQuestion:   jsonNames(event.Location),
		HopCount:            1,
		ConfidenceScore:     0.93,
		Domain:              event.Domain,
		RequiresCalculation: true,
		ComplexityScore:     0.5,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// eventSequence asks for the chronological order of three distinct
// events. The answer lists their names sorted by start year.
type eventSequence struct {
	window Window
}

func (s *eventSequence) Type() types.QuestionType { return types.SequenceOrdering }

func (s *eventSequence) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	if len(kb.Events) < 3 {
		return Skip("need three events for an ordering")
	}
	perm := rng.Perm(len(kb.Events))[:3]
	chosen := []types.Event{kb.Events[perm[0]], kb.Events[perm[1]], kb.Events[perm[2]]}

	names := make([]string, len(chosen))
	locations := make([]string, len(chosen))
	for i, e := range chosen {
		names[i] = e.Name
		locations[i] = e.Location
	}

	ordered := append([]types.Event(nil), chosen...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Year < ordered[j].Year })
	answer := make([]string, len(ordered))
	for i, e := range ordered {
		answer[i] = e.Name
	}

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("evt_seq", batchID),
		Question:            fmt.Sprintf(pick(rng, sequenceTemplates), strings.Join(names, ", ")),
		Answer:              strings.Join(answer, ", "),
		QuestionType:        types.SequenceOrdering,
		Difficulty:          rng.Intn(3) + 3,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(names...),
		CountriesQuestion:   jsonNames(locations...),
		HopCount:            3,
		ConfidenceScore:     0.88,
		Domain:              "sequence",
		ComplexityScore:     0.8,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// eventOverlap asks whether two events' year ranges intersect, treating
// ranges as inclusive intervals.
type eventOverlap struct {
	window Window
}

func (s *eventOverlap) Type() types.QuestionType { return types.TemporalOverlap }

func (s *eventOverlap) Synthesize(kb *knowledge.Base, rng *rand.Rand, batchID int) Result {
	a, b, ok := samplePair(rng, kb.Events)
	if !ok {
		return Skip("need two events for an overlap check")
	}

	answer := "no"
	if a.Year <= b.EndYear && b.Year <= a.EndYear {
		answer = "yes"
	}

	return Ok(&types.TemporalQuestion{
		ID:                  questionID("evt_olap", batchID),
		Question:            fmt.Sprintf("Did %s and %s overlap in time?", a.Name, b.Name),
		Answer:              answer,
		QuestionType:        types.TemporalOverlap,
		Difficulty:          rng.Intn(2) + 3,
		TemporalGranularity: "year",
		TimeSpanStart:       s.window.SpanStart(),
		TimeSpanEnd:         s.window.SpanEnd(),
		EntitiesQuestion:    jsonNames(a.Name, b.Name),
		CountriesQuestion:   jsonNames(a.Location, b.Location),
		HopCount:            2,
		ConfidenceScore:     0.91,
		Domain:              "comparison",
		ComplexityScore:     0.6,
		SourceType:          types.SourceCurated,
		BatchID:             batchID,
	})
}

// samplePair picks two distinct elements uniformly without replacement.
func samplePair[T any](rng *rand.Rand, s []T) (T, T, bool) {
	var zero T
	if len(s) < 2 {
		return zero, zero, false
	}
	i := rng.Intn(len(s))
	j := rng.Intn(len(s) - 1)
	if j >= i {
		j++
	}
	return s[i], s[j], true
}
