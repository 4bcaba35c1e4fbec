// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate gates synthesized questions before they are buffered
// for writing. The gate runs four ordered checks, short-circuiting on the
// first failure: structural, content, quality, and temporal consistency.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// DefaultMinConfidence is the evaluation-facing minimum; generation runs
// pass the configured quality threshold instead.
const DefaultMinConfidence = 0.7

// placeholderMarkers reject unsubstituted templates and null-like text.
var placeholderMarkers = []string{"{", "}", "None", "N/A", "null"}

// emptyAnswers are normalized answers that carry no information.
var emptyAnswers = map[string]bool{
	"unknown": true,
	"none":    true,
	"":        true,
	"0":       true,
}

// Validator applies the quality gate to candidate questions.
type Validator struct {
	minConfidence float64
}

// New returns a validator with the given minimum confidence score. A
// non-positive value selects DefaultMinConfidence.
func New(minConfidence float64) *Validator {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	return &Validator{minConfidence: minConfidence}
}

// Validate reports whether q passes every gate.
func (v *Validator) Validate(q *types.TemporalQuestion) bool {
	if q == nil {
		return false
	}
	return v.structural(q) && v.content(q) && v.quality(q) && v.temporal(q)
}

func (v *Validator) structural(q *types.TemporalQuestion) bool {
	if q.Question == "" || q.Answer == "" {
		return false
	}
	if q.ID == "" || q.QuestionType == "" {
		return false
	}
	if len(q.Question) < 10 || len(q.Question) > 300 {
		return false
	}
	if len(q.Answer) < 1 || len(q.Answer) > 100 {
		return false
	}
	return true
}

func (v *Validator) content(q *types.TemporalQuestion) bool {
	for _, marker := range placeholderMarkers {
		if strings.Contains(q.Question, marker) || strings.Contains(q.Answer, marker) {
			return false
		}
	}
	if emptyAnswers[strings.ToLower(strings.TrimSpace(q.Answer))] {
		return false
	}
	if len(strings.Fields(q.Question)) < 5 {
		return false
	}
	return true
}

func (v *Validator) quality(q *types.TemporalQuestion) bool {
	if q.ConfidenceScore < v.minConfidence {
		return false
	}
	if q.Difficulty < types.VeryEasy || q.Difficulty > types.VeryHard {
		return false
	}
	if q.HopCount < 1 || q.HopCount > 10 {
		return false
	}
	return true
}

// temporal checks that the span start year does not exceed the end year
// when both bounds are present. Spans with unparsable years are rejected.
func (v *Validator) temporal(q *types.TemporalQuestion) bool {
	if q.TimeSpanStart == "" || q.TimeSpanEnd == "" {
		return true
	}
	start, ok := spanYear(q.TimeSpanStart)
	if !ok {
		return false
	}
	end, ok := spanYear(q.TimeSpanEnd)
	if !ok {
		return false
	}
	return start <= end
}

// spanYear parses the leading year of an ISO date string.
func spanYear(span string) (int, bool) {
	head, _, _ := strings.Cut(span, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return year, true
}

// Reasons returns the human-readable list of checks q fails, for
// debugging and tests. It is independent of the boolean gate and does not
// short-circuit.
func (v *Validator) Reasons(q *types.TemporalQuestion) []string {
	if q == nil {
		return []string{"question is nil"}
	}

	var reasons []string
	if q.Question == "" {
		reasons = append(reasons, "missing question text")
	}
	if q.Answer == "" {
		reasons = append(reasons, "missing answer")
	}
	if q.ID == "" {
		reasons = append(reasons, "missing id")
	}
	if q.QuestionType == "" {
		reasons = append(reasons, "missing question type")
	}
	if len(q.Question) > 0 && len(q.Question) < 10 {
		reasons = append(reasons, "question too short")
	}
	if len(q.Question) > 300 {
		reasons = append(reasons, "question too long")
	}
	if len(q.Answer) > 100 {
		reasons = append(reasons, "answer too long")
	}
	if !v.content(q) && v.structural(q) {
		reasons = append(reasons, "content check failed (placeholder, empty answer, or too few words)")
	}
	if q.ConfidenceScore < v.minConfidence {
		reasons = append(reasons, fmt.Sprintf("low confidence: %.2f", q.ConfidenceScore))
	}
	if q.Difficulty < types.VeryEasy || q.Difficulty > types.VeryHard {
		reasons = append(reasons, fmt.Sprintf("difficulty out of range: %d", q.Difficulty))
	}
	if q.HopCount < 1 || q.HopCount > 10 {
		reasons = append(reasons, fmt.Sprintf("hop count out of range: %d", q.HopCount))
	}
	if !v.temporal(q) {
		reasons = append(reasons, "time span start exceeds end")
	}
	return reasons
}
