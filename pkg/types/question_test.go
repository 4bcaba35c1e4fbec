// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMatchesFieldOrder(t *testing.T) {
	q := &TemporalQuestion{
		ID:                  "evt_attr_1_abc123def456",
		Question:            "When did World War II occur?",
		Answer:              "1939",
		QuestionType:        AttributeEvent,
		Difficulty:          Easy,
		TemporalGranularity: "year",
		TimeSpanStart:       "1800-01-01",
		TimeSpanEnd:         "2025-12-31",
		EntitiesQuestion:    `["World War II"]`,
		CountriesQuestion:   `["Global"]`,
		HopCount:            1,
		ConfidenceScore:     0.95,
		Domain:              "military",
		RequiresCalculation: false,
		ComplexityScore:     0.3,
		SourceType:          SourceCurated,
		BatchID:             1,
	}

	record := q.Record()
	require.Len(t, record, len(QuestionFields))

	byField := make(map[string]string, len(record))
	for i, name := range QuestionFields {
		byField[name] = record[i]
	}

	assert.Equal(t, "evt_attr_1_abc123def456", byField["id"])
	assert.Equal(t, "When did World War II occur?", byField["question"])
	assert.Equal(t, "1939", byField["answer"])
	assert.Equal(t, "attribute_event", byField["question_type"])
	assert.Equal(t, "2", byField["difficulty"])
	assert.Equal(t, "0.95", byField["confidence_score"])
	assert.Equal(t, "false", byField["requires_calculation"])
	assert.Equal(t, "curated", byField["source_type"])
	assert.Equal(t, "1", byField["batch_id"])
}

func TestAllQuestionTypesDistinct(t *testing.T) {
	seen := make(map[QuestionType]bool)
	for _, qt := range AllQuestionTypes {
		assert.False(t, seen[qt], "duplicate question type %s", qt)
		seen[qt] = true
	}
	assert.Len(t, AllQuestionTypes, 16)
}
