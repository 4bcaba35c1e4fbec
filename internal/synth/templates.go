// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"math/rand"
	"strconv"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// eventTemplate pairs a question pattern over one event with its answer
// derivation.
type eventTemplate struct {
	question string // contains one %s for the event name
	answer   func(e types.Event) string
}

// eventAttributeTemplates are the single-event attribute patterns. Answer
// derivation is deterministic given the event.
var eventAttributeTemplates = []eventTemplate{
	{
		question: "When did %s occur?",
		answer:   func(e types.Event) string { return strconv.Itoa(e.Year) },
	},
	{
		question: "Where did %s take place?",
		answer:   func(e types.Event) string { return e.Location },
	},
	{
		question: "In which year did %s happen?",
		answer:   func(e types.Event) string { return strconv.Itoa(e.Year) },
	},
	{
		question: "What was the location of %s?",
		answer:   func(e types.Event) string { return e.Location },
	},
}

// eventPairTemplate pairs a two-event question pattern with its answer
// derivation. Ties resolve to the second-compared operand: the comparison
// is a strict </> on years, so equal years fall through to b. This is the
// canonical tie rule for every comparison type.
type eventPairTemplate struct {
	question string // contains two %s verbs for the event names
	answer   func(a, b types.Event) string
}

var eventComparisonTemplates = []eventPairTemplate{
	{
		question: "Which occurred first, %s or %s?",
		answer: func(a, b types.Event) string {
			if a.Year < b.Year {
				return a.Name
			}
			return b.Name
		},
	},
	{
		question: "Which happened later, %s or %s?",
		answer: func(a, b types.Event) string {
			if a.Year > b.Year {
				return a.Name
			}
			return b.Name
		},
	},
	{
		question: "Did %s happen before %s?",
		answer: func(a, b types.Event) string {
			if a.Year < b.Year {
				return "yes"
			}
			return "no"
		},
	},
}

// personTemplate pairs a single-person question pattern with its answer.
type personTemplate struct {
	question string
	answer   func(p types.Person) string
}

var personAttributeTemplates = []personTemplate{
	{
		question: "When was %s born?",
		answer:   func(p types.Person) string { return strconv.Itoa(p.BirthYear) },
	},
	{
		question: "What nationality is %s?",
		answer:   func(p types.Person) string { return p.Country },
	},
	{
		question: "What field does %s work in?",
		answer:   func(p types.Person) string { return p.Field },
	},
}

var personComparisonTemplates = []struct {
	question string
	answer   func(a, b types.Person) string
}{
	{
		question: "Who was born first, %s or %s?",
		answer: func(a, b types.Person) string {
			if a.BirthYear < b.BirthYear {
				return a.Name
			}
			return b.Name
		},
	},
	{
		question: "Who was born later, %s or %s?",
		answer: func(a, b types.Person) string {
			if a.BirthYear > b.BirthYear {
				return a.Name
			}
			return b.Name
		},
	},
}

// countingTemplates phrase a domain-count question; %s is the domain and
// the two %d values are the inclusive year range.
var countingTemplates = []string{
	"How many %s events occurred between %d and %d?",
	"What is the count of %s events from %d to %d?",
	"How many events in the %s domain happened during %d-%d?",
}

var durationTemplates = []string{
	"How long did %s last?",
	"What was the duration of %s?",
	"For how many years did %s continue?",
}

var sequenceTemplates = []string{
	"What is the chronological order of these events: %s?",
	"Arrange these events in chronological order: %s",
	"Order these events from earliest to latest: %s",
}

// pick returns a uniformly random element of s.
func pick[T any](rng *rand.Rand, s []T) T {
	return s[rng.Intn(len(s))]
}
