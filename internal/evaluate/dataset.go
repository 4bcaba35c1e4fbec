// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
)

// Row is one dataset question as read back from a batch CSV.
type Row struct {
	Question     string
	Answer       string
	QuestionType string
	Domain       string
	Confidence   float64
	Difficulty   int
}

// LoadDataset reads a batch CSV and returns its usable rows. Rows with a
// short question or an empty answer are dropped, mirroring the cleaning
// the generator's validator applies.
func LoadDataset(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"question", "answer", "question_type"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("dataset missing %q column", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}

		row := Row{
			Question:     field(record, "question"),
			Answer:       field(record, "answer"),
			QuestionType: field(record, "question_type"),
			Domain:       field(record, "domain"),
		}
		row.Confidence, _ = strconv.ParseFloat(field(record, "confidence_score"), 64)
		row.Difficulty, _ = strconv.Atoi(field(record, "difficulty"))

		if len(row.Question) <= 10 || row.Answer == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// maxSampleTypes bounds how many question types the evaluation sample
// stratifies over.
const maxSampleTypes = 5

// questionTypes returns the distinct types in first-seen order, capped at
// maxSampleTypes.
func questionTypes(rows []Row) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		if seen[row.QuestionType] {
			continue
		}
		seen[row.QuestionType] = true
		out = append(out, row.QuestionType)
		if len(out) == maxSampleTypes {
			break
		}
	}
	return out
}

// StratifiedSample draws an evaluation sample of up to sampleSize rows,
// split evenly across the first maxSampleTypes question types.
func StratifiedSample(rows []Row, sampleSize int, rng *rand.Rand) []Row {
	qtypes := questionTypes(rows)
	if len(qtypes) == 0 {
		return nil
	}
	perType := sampleSize / len(qtypes)
	if perType == 0 {
		perType = 1
	}

	var sample []Row
	for _, qtype := range qtypes {
		var pool []Row
		for _, row := range rows {
			if row.QuestionType == qtype {
				pool = append(pool, row)
			}
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		if len(pool) > perType {
			pool = pool[:perType]
		}
		sample = append(sample, pool...)
	}
	return sample
}

// Example is one few-shot demonstration.
type Example struct {
	Question string
	Answer   string
	Type     string
}

const (
	exampleMinConfidence = 0.9
	exampleMaxDifficulty = 2
	examplesPerType      = 10
	maxExamples          = 50
)

// FewShotExamples builds the few-shot pool from high-confidence, easy
// rows: up to ten per question type, fifty overall.
func FewShotExamples(rows []Row, rng *rand.Rand) []Example {
	var examples []Example
	for _, qtype := range questionTypes(rows) {
		var pool []Row
		for _, row := range rows {
			if row.QuestionType != qtype {
				continue
			}
			if row.Confidence < exampleMinConfidence || row.Difficulty > exampleMaxDifficulty {
				continue
			}
			pool = append(pool, row)
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		if len(pool) > examplesPerType {
			pool = pool[:examplesPerType]
		}
		for _, row := range pool {
			examples = append(examples, Example{Question: row.Question, Answer: row.Answer, Type: row.QuestionType})
		}
	}
	if len(examples) > maxExamples {
		examples = examples[:maxExamples]
	}
	return examples
}
