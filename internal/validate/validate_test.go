// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// validQuestion returns a question that passes every gate at the default
// generation threshold.
func validQuestion() *types.TemporalQuestion {
	return &types.TemporalQuestion{
		ID:              "evt_attr_1_abc123def456",
		Question:        "When did World War II occur?",
		Answer:          "1939",
		QuestionType:    types.AttributeEvent,
		Difficulty:      types.Easy,
		TimeSpanStart:   "1800-01-01",
		TimeSpanEnd:     "2025-12-31",
		HopCount:        1,
		ConfidenceScore: 0.95,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *types.TemporalQuestion)
		want   bool
	}{
		{
			name:   "valid question passes",
			mutate: func(q *types.TemporalQuestion) {},
			want:   true,
		},
		{
			name:   "empty question text",
			mutate: func(q *types.TemporalQuestion) { q.Question = "" },
			want:   false,
		},
		{
			name:   "empty answer",
			mutate: func(q *types.TemporalQuestion) { q.Answer = "" },
			want:   false,
		},
		{
			name:   "missing id",
			mutate: func(q *types.TemporalQuestion) { q.ID = "" },
			want:   false,
		},
		{
			name:   "question too short",
			mutate: func(q *types.TemporalQuestion) { q.Question = "When now?" },
			want:   false,
		},
		{
			name:   "question too long",
			mutate: func(q *types.TemporalQuestion) { q.Question = strings.Repeat("very long question ", 20) },
			want:   false,
		},
		{
			name:   "answer too long",
			mutate: func(q *types.TemporalQuestion) { q.Answer = strings.Repeat("a", 101) },
			want:   false,
		},
		{
			name:   "unsubstituted template marker",
			mutate: func(q *types.TemporalQuestion) { q.Question = "When did {event} happen exactly?" },
			want:   false,
		},
		{
			name:   "null-like answer",
			mutate: func(q *types.TemporalQuestion) { q.Answer = "N/A" },
			want:   false,
		},
		{
			name:   "normalized empty answer",
			mutate: func(q *types.TemporalQuestion) { q.Answer = " Unknown " },
			want:   false,
		},
		{
			name:   "zero-count answer",
			mutate: func(q *types.TemporalQuestion) { q.Answer = "0" },
			want:   false,
		},
		{
			name:   "fewer than five words",
			mutate: func(q *types.TemporalQuestion) { q.Question = "Sample attribute_event question" },
			want:   false,
		},
		{
			name:   "confidence below threshold",
			mutate: func(q *types.TemporalQuestion) { q.ConfidenceScore = 0.75 },
			want:   false,
		},
		{
			name:   "difficulty out of range",
			mutate: func(q *types.TemporalQuestion) { q.Difficulty = 6 },
			want:   false,
		},
		{
			name:   "hop count out of range",
			mutate: func(q *types.TemporalQuestion) { q.HopCount = 0 },
			want:   false,
		},
		{
			name: "span start after end",
			mutate: func(q *types.TemporalQuestion) {
				q.TimeSpanStart = "2000-01-01"
				q.TimeSpanEnd = "1999-12-31"
			},
			want: false,
		},
		{
			name: "unparsable span year",
			mutate: func(q *types.TemporalQuestion) {
				q.TimeSpanStart = "unknown-01-01"
			},
			want: false,
		},
		{
			name: "missing spans are allowed",
			mutate: func(q *types.TemporalQuestion) {
				q.TimeSpanStart = ""
				q.TimeSpanEnd = ""
			},
			want: true,
		},
		{
			name: "same-year span is allowed",
			mutate: func(q *types.TemporalQuestion) {
				q.TimeSpanStart = "1969-01-01"
				q.TimeSpanEnd = "1969-12-31"
			},
			want: true,
		},
	}

	v := New(0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			assert.Equal(t, tt.want, v.Validate(q))
		})
	}
}

func TestValidateNil(t *testing.T) {
	v := New(0.8)
	assert.False(t, v.Validate(nil))
	assert.Equal(t, []string{"question is nil"}, v.Reasons(nil))
}

func TestNewDefaultsThreshold(t *testing.T) {
	v := New(0)
	q := validQuestion()
	q.ConfidenceScore = DefaultMinConfidence
	assert.True(t, v.Validate(q))
	q.ConfidenceScore = DefaultMinConfidence - 0.01
	assert.False(t, v.Validate(q))
}

func TestReasonsCollectsAllFailures(t *testing.T) {
	v := New(0.8)

	q := validQuestion()
	assert.Empty(t, v.Reasons(q))

	q.Question = ""
	q.ConfidenceScore = 0.1
	q.HopCount = 0
	reasons := v.Reasons(q)
	assert.Contains(t, reasons, "missing question text")
	assert.Contains(t, reasons, "low confidence: 0.10")
	assert.Contains(t, reasons, "hop count out of range: 0")
}
