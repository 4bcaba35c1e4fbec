// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the zero- or few-shot prompt for a question.
func BuildPrompt(question string, examples []Example) string {
	if len(examples) == 0 {
		return fmt.Sprintf(
			"Answer this question with a short, precise answer (1-3 words maximum).\n\nQuestion: %s\nAnswer:",
			question)
	}

	var b strings.Builder
	b.WriteString("Answer questions with short, precise answers (1-3 words maximum). Examples:\n\n")
	for _, ex := range examples {
		fmt.Fprintf(&b, "Question: %s\nAnswer: %s\n\n", ex.Question, ex.Answer)
	}
	fmt.Fprintf(&b, "Question: %s\nAnswer:", question)
	return b.String()
}

// BuildInstructionPrompt renders an instruction-following variant used by
// chat-tuned models.
func BuildInstructionPrompt(question string, examples []Example) string {
	const instruction = "You are a helpful assistant that answers temporal questions accurately. " +
		"Provide short, factual answers."

	var b strings.Builder
	b.WriteString(instruction)
	if len(examples) > 0 {
		b.WriteString("\n\nExamples:\n")
		for _, ex := range examples {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", ex.Question, ex.Answer)
		}
		fmt.Fprintf(&b, "Q: %s\nA:", question)
		return b.String()
	}
	fmt.Fprintf(&b, "\n\nQ: %s\nA:", question)
	return b.String()
}
