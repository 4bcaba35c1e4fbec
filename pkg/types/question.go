// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// QuestionType tags a temporal question with its reasoning category.
type QuestionType string

const (
	AttributeEvent     QuestionType = "attribute_event"
	AttributeEntity    QuestionType = "attribute_entity"
	AttributeTime      QuestionType = "attribute_time"
	ComparisonEvent    QuestionType = "comparison_event"
	ComparisonEntity   QuestionType = "comparison_entity"
	ComparisonTime     QuestionType = "comparison_time"
	CountingEvent      QuestionType = "counting_event"
	CountingEntity     QuestionType = "counting_entity"
	CausalReasoning    QuestionType = "causal_reasoning"
	DurationEstimation QuestionType = "duration_estimation"
	SequenceOrdering   QuestionType = "sequence_ordering"
	CrossDomain        QuestionType = "cross_domain"
	TemporalClustering QuestionType = "temporal_clustering"
	MultiGranular      QuestionType = "multi_granular"
	Counterfactual     QuestionType = "counterfactual"
	TemporalOverlap    QuestionType = "temporal_overlap"
)

// AllQuestionTypes lists every supported type in the order used for the
// per-batch type distribution. The order is fixed: changing it changes
// which types run first and therefore which undershoot when a batch
// stops early.
var AllQuestionTypes = []QuestionType{
	AttributeEvent,
	AttributeEntity,
	AttributeTime,
	ComparisonEvent,
	ComparisonEntity,
	ComparisonTime,
	CountingEvent,
	CountingEntity,
	CausalReasoning,
	DurationEstimation,
	SequenceOrdering,
	CrossDomain,
	TemporalClustering,
	MultiGranular,
	Counterfactual,
	TemporalOverlap,
}

// Difficulty levels for generated questions.
const (
	VeryEasy = 1
	Easy     = 2
	Medium   = 3
	Hard     = 4
	VeryHard = 5
)

// TemporalQuestion is one generated question-answer pair. A question is
// constructed once by a synthesizer, validated, and either discarded or
// written; it is never mutated after construction.
type TemporalQuestion struct {
	ID                  string       `json:"id" yaml:"id"`
	Question            string       `json:"question" yaml:"question"`
	Answer              string       `json:"answer" yaml:"answer"`
	QuestionType        QuestionType `json:"question_type" yaml:"question_type"`
	Difficulty          int          `json:"difficulty" yaml:"difficulty"`
	TemporalGranularity string       `json:"temporal_granularity" yaml:"temporal_granularity"`
	TimeSpanStart       string       `json:"time_span_start" yaml:"time_span_start"`
	TimeSpanEnd         string       `json:"time_span_end" yaml:"time_span_end"`
	EntitiesQuestion    string       `json:"entities_question" yaml:"entities_question"`
	CountriesQuestion   string       `json:"countries_question" yaml:"countries_question"`
	HopCount            int          `json:"hop_count" yaml:"hop_count"`
	ConfidenceScore     float64      `json:"confidence_score" yaml:"confidence_score"`
	Domain              string       `json:"domain" yaml:"domain"`
	RequiresCalculation bool         `json:"requires_calculation" yaml:"requires_calculation"`
	ComplexityScore     float64      `json:"complexity_score" yaml:"complexity_score"`
	SourceType          string       `json:"source_type" yaml:"source_type"`
	BatchID             int          `json:"batch_id" yaml:"batch_id"`
}

// QuestionFields is the canonical CSV column order. Every batch file in a
// run is schema-identical to this header.
var QuestionFields = []string{
	"id",
	"question",
	"answer",
	"question_type",
	"difficulty",
	"temporal_granularity",
	"time_span_start",
	"time_span_end",
	"entities_question",
	"countries_question",
	"hop_count",
	"confidence_score",
	"domain",
	"requires_calculation",
	"complexity_score",
	"source_type",
	"batch_id",
}

// Record serializes the question to one CSV row in QuestionFields order.
// Every value is rendered as text.
func (q *TemporalQuestion) Record() []string {
	return []string{
		q.ID,
		q.Question,
		q.Answer,
		string(q.QuestionType),
		strconv.Itoa(q.Difficulty),
		q.TemporalGranularity,
		q.TimeSpanStart,
		q.TimeSpanEnd,
		q.EntitiesQuestion,
		q.CountriesQuestion,
		strconv.Itoa(q.HopCount),
		strconv.FormatFloat(q.ConfidenceScore, 'g', -1, 64),
		q.Domain,
		strconv.FormatBool(q.RequiresCalculation),
		strconv.FormatFloat(q.ComplexityScore, 'g', -1, 64),
		q.SourceType,
		strconv.Itoa(q.BatchID),
	}
}

// SourceCurated marks questions derived from the curated knowledge base.
const SourceCurated = "curated"
