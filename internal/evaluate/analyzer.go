// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// modelKey groups results by model and shot count.
type modelKey struct {
	Model string
	Shots int
}

// aggregate holds the mean metrics for one group of results.
type aggregate struct {
	Count       int
	Precision   float64
	Recall      float64
	F1          float64
	F1Stddev    float64
	ExactMatch  float64
	Containment float64
}

// Report writes the analysis tables for a set of results to out: mean
// metrics per model and shot count, few-shot improvement over zero-shot,
// and mean F1 per question type.
func Report(results []Result, out io.Writer) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 78))
	fmt.Fprintf(out, "EVALUATION ANALYSIS\n")
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 78))

	byModel := groupByModel(results)
	keys := sortedKeys(byModel)

	fmt.Fprintf(out, "%-24s %6s %8s %8s %8s %8s %8s\n",
		"MODEL", "SHOTS", "F1", "EM", "PREC", "RECALL", "CONTAIN")
	fmt.Fprintln(out, strings.Repeat("-", 78))
	for _, key := range keys {
		agg := byModel[key]
		fmt.Fprintf(out, "%-24s %6d %8.2f %8.2f %8.2f %8.2f %8.2f\n",
			key.Model, key.Shots, agg.F1, agg.ExactMatch, agg.Precision, agg.Recall, agg.Containment)
	}

	reportImprovements(byModel, keys, out)
	reportByType(results, out)
}

// reportImprovements compares each model's best few-shot F1 against its
// zero-shot F1.
func reportImprovements(byModel map[modelKey]aggregate, keys []modelKey, out io.Writer) {
	zeroShot := make(map[string]float64)
	bestShot := make(map[string]modelKey)
	for _, key := range keys {
		agg := byModel[key]
		if key.Shots == 0 {
			zeroShot[key.Model] = agg.F1
			continue
		}
		best, ok := bestShot[key.Model]
		if !ok || agg.F1 > byModel[best].F1 {
			bestShot[key.Model] = key
		}
	}
	if len(bestShot) == 0 {
		return
	}

	models := make([]string, 0, len(bestShot))
	for model := range bestShot {
		models = append(models, model)
	}
	sort.Strings(models)

	fmt.Fprintf(out, "\nFew-shot improvement over zero-shot (F1):\n")
	for _, model := range models {
		base, ok := zeroShot[model]
		if !ok {
			continue
		}
		best := bestShot[model]
		delta := byModel[best].F1 - base
		fmt.Fprintf(out, "  %-24s %d-shot: %+.2f (%.2f -> %.2f)\n",
			model, best.Shots, delta, base, byModel[best].F1)
	}
}

// reportByType prints mean F1 per question type across all models and
// shot counts.
func reportByType(results []Result, out io.Writer) {
	byType := make(map[string][]float64)
	for _, r := range results {
		byType[r.QuestionType] = append(byType[r.QuestionType], r.F1)
	}
	qtypes := make([]string, 0, len(byType))
	for qtype := range byType {
		qtypes = append(qtypes, qtype)
	}
	sort.Strings(qtypes)

	fmt.Fprintf(out, "\nMean F1 by question type:\n")
	for _, qtype := range qtypes {
		mean, _ := stats.Mean(byType[qtype])
		fmt.Fprintf(out, "  %-24s %8.2f  (n=%d)\n", qtype, mean, len(byType[qtype]))
	}
}

// WriteReport renders the analysis to a text file.
func WriteReport(results []Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	Report(results, f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

// groupByModel aggregates mean metrics for every model and shot count.
func groupByModel(results []Result) map[modelKey]aggregate {
	grouped := make(map[modelKey][]Result)
	for _, r := range results {
		key := modelKey{Model: r.Model, Shots: r.Shots}
		grouped[key] = append(grouped[key], r)
	}

	out := make(map[modelKey]aggregate, len(grouped))
	for key, rs := range grouped {
		var precision, recall, f1, em, contain []float64
		for _, r := range rs {
			precision = append(precision, r.Precision)
			recall = append(recall, r.Recall)
			f1 = append(f1, r.F1)
			em = append(em, r.ExactMatch)
			contain = append(contain, r.Containment)
		}
		agg := aggregate{Count: len(rs)}
		agg.Precision, _ = stats.Mean(precision)
		agg.Recall, _ = stats.Mean(recall)
		agg.F1, _ = stats.Mean(f1)
		agg.F1Stddev, _ = stats.StandardDeviation(f1)
		agg.ExactMatch, _ = stats.Mean(em)
		agg.Containment, _ = stats.Mean(contain)
		out[key] = agg
	}
	return out
}

func sortedKeys(byModel map[modelKey]aggregate) []modelKey {
	keys := make([]modelKey, 0, len(byModel))
	for key := range byModel {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Model != keys[j].Model {
			return keys[i].Model < keys[j].Model
		}
		return keys[i].Shots < keys[j].Shots
	})
	return keys
}
