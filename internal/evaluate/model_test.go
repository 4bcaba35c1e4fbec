// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "strips answer prefix", in: "The answer is 1939.", want: "1939"},
		{name: "keeps short answer", in: "Paris", want: "paris"},
		{name: "first line only", in: "1969\nThe moon landing happened then.", want: "1969"},
		{name: "first sentence only", in: "yes. It overlapped for years", want: "yes"},
		{name: "extracts year from phrasing", in: "it happened in 1945", want: "1945"},
		{name: "caps at three words", in: "United States of America", want: "united states of"},
		{name: "empty becomes unknown", in: "", want: "unknown"},
		{name: "whitespace becomes unknown", in: "   \n  ", want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResponse(tt.in))
		})
	}
}

func TestFallbackModelDeterministic(t *testing.T) {
	a := NewFallbackModel(99)
	b := NewFallbackModel(99)

	prompts := []string{
		"Question: When did World War II occur?\nAnswer:",
		"Question: Who was born first, A or B?\nAnswer:",
		"Question: How many military events occurred between 1900 and 1950?\nAnswer:",
	}
	for _, prompt := range prompts {
		gotA, err := a.Generate(context.Background(), prompt, 30)
		require.NoError(t, err)
		gotB, err := b.Generate(context.Background(), prompt, 30)
		require.NoError(t, err)
		assert.Equal(t, gotA, gotB)
	}
}

func TestFallbackModelHeuristics(t *testing.T) {
	m := NewFallbackModel(1)
	ctx := context.Background()

	year, err := m.Generate(ctx, "when did the moon landing occur?", 30)
	require.NoError(t, err)
	n, err := strconv.Atoi(year)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1990)
	assert.LessOrEqual(t, n, 2025)

	count, err := m.Generate(ctx, "how many events happened that decade?", 30)
	require.NoError(t, err)
	n, err = strconv.Atoi(count)
	require.NoError(t, err)
	assert.Positive(t, n)

	got, err := m.Generate(ctx, "what is the tallest mountain?", 30)
	require.NoError(t, err)
	assert.Equal(t, "unknown", got)

	assert.Equal(t, "heuristic-fallback", m.Name())
}
