// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"regexp"
	"strings"
)

// Metrics holds the per-prediction scores, each on a 0-100 scale.
type Metrics struct {
	Precision   float64
	Recall      float64
	F1          float64
	ExactMatch  float64
	Containment float64
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	numberRe     = regexp.MustCompile(`\b\d+\b`)
)

// Score computes all metrics for a prediction against the true answer.
func Score(pred, truth string) Metrics {
	precision, recall, f1 := tokenMetrics(pred, truth)
	return Metrics{
		Precision:   precision,
		Recall:      recall,
		F1:          f1,
		ExactMatch:  exactMatch(pred, truth),
		Containment: containment(pred, truth),
	}
}

// Normalize lower-cases an answer, strips punctuation, and collapses
// whitespace so comparisons are insensitive to surface form.
func Normalize(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	answer = nonWordRe.ReplaceAllString(answer, " ")
	answer = whitespaceRe.ReplaceAllString(answer, " ")
	return strings.TrimSpace(answer)
}

// exactMatch scores 100 for a normalized match, a substring containment
// in either direction, or any shared number. Numbers matter for temporal
// answers: "in 1939" matches "1939".
func exactMatch(pred, truth string) float64 {
	predNorm := Normalize(pred)
	truthNorm := Normalize(truth)
	if truthNorm == "" {
		return 0
	}
	if predNorm == truthNorm {
		return 100
	}
	if predNorm != "" && (strings.Contains(predNorm, truthNorm) || strings.Contains(truthNorm, predNorm)) {
		return 100
	}

	predNums := numberRe.FindAllString(predNorm, -1)
	truthNums := numberRe.FindAllString(truthNorm, -1)
	for _, p := range predNums {
		for _, t := range truthNums {
			if p == t {
				return 100
			}
		}
	}
	return 0
}

// tokenMetrics computes token-set precision, recall, and F1.
func tokenMetrics(pred, truth string) (precision, recall, f1 float64) {
	predTokens := tokenSet(Normalize(pred))
	truthTokens := tokenSet(Normalize(truth))
	if len(predTokens) == 0 || len(truthTokens) == 0 {
		return 0, 0, 0
	}

	common := 0
	for tok := range predTokens {
		if truthTokens[tok] {
			common++
		}
	}

	precision = float64(common) / float64(len(predTokens))
	recall = float64(common) / float64(len(truthTokens))
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision * 100, recall * 100, f1 * 100
}

// containment is the fraction of truth tokens present in the prediction.
func containment(pred, truth string) float64 {
	predTokens := tokenSet(Normalize(pred))
	truthTokens := tokenSet(Normalize(truth))
	if len(truthTokens) == 0 {
		return 0
	}

	overlap := 0
	for tok := range truthTokens {
		if predTokens[tok] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(truthTokens)) * 100
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
