// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  The Answer!  ", want: "the answer"},
		{in: "WORLD   WAR  II", want: "world war ii"},
		{in: "1939.", want: "1939"},
		{in: "don't", want: "don t"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestScoreExactMatch(t *testing.T) {
	m := Score("1939", "1939")
	assert.Equal(t, 100.0, m.ExactMatch)
	assert.Equal(t, 100.0, m.F1)
	assert.Equal(t, 100.0, m.Containment)
}

func TestScoreSubstringCountsAsExact(t *testing.T) {
	m := Score("in 1939", "1939")
	assert.Equal(t, 100.0, m.ExactMatch)
	assert.Equal(t, 100.0, m.Recall)
	assert.Equal(t, 50.0, m.Precision)
	assert.InDelta(t, 66.67, m.F1, 0.01)
	assert.Equal(t, 100.0, m.Containment)
}

func TestScoreSharedNumberCountsAsExact(t *testing.T) {
	// Temporal answers match on the number even when the words differ.
	m := Score("the year was 1945 exactly", "ended in 1945")
	assert.Equal(t, 100.0, m.ExactMatch)
}

func TestScorePartialTokenOverlap(t *testing.T) {
	m := Score("world war", "world war ii")
	assert.Equal(t, 100.0, m.Precision)
	assert.InDelta(t, 66.67, m.Recall, 0.01)
	assert.InDelta(t, 80.0, m.F1, 0.01)
	assert.InDelta(t, 66.67, m.Containment, 0.01)
	// Substring containment still makes this an exact match.
	assert.Equal(t, 100.0, m.ExactMatch)
}

func TestScoreDisjoint(t *testing.T) {
	m := Score("paris", "london")
	assert.Zero(t, m.ExactMatch)
	assert.Zero(t, m.F1)
	assert.Zero(t, m.Containment)
}

func TestScoreEmptyPrediction(t *testing.T) {
	m := Score("", "1939")
	assert.Zero(t, m.ExactMatch)
	assert.Zero(t, m.Precision)
	assert.Zero(t, m.Recall)
	assert.Zero(t, m.F1)
	assert.Zero(t, m.Containment)
}
