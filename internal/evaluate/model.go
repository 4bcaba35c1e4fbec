// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Model answers a prompt with a short free-text prediction.
type Model interface {
	// Name identifies the model in results.
	Name() string

	// Generate returns the model's raw completion for prompt, bounded by
	// maxTokens.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// RetryBaseDelay controls the base duration for exponential backoff on
// failed model calls. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// openAIModel queries an OpenAI-compatible chat-completions endpoint.
type openAIModel struct {
	client      *openai.Client
	model       string
	temperature float64
	maxRetries  int
}

// NewOpenAIModel builds a model client for an OpenAI-compatible endpoint.
// An empty baseURL targets the default API host.
func NewOpenAIModel(model, apiKey, baseURL string, temperature float64, maxRetries int) Model {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIModel{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
		maxRetries:  maxRetries,
	}
}

func (m *openAIModel) Name() string { return m.model }

// Generate calls the chat-completions endpoint, retrying transient
// failures with exponential backoff. The delay doubles each attempt; a
// cancelled context aborts the wait.
func (m *openAIModel) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: float32(m.temperature),
	}

	var lastErr error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * RetryBaseDelay
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := m.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("model %s returned no choices", m.model)
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("model %s: %w", m.model, lastErr)
}

// FallbackModel produces keyword-driven heuristic answers without any
// network access. It exists for offline runs and tests; with a fixed seed
// its output is deterministic.
type FallbackModel struct {
	rng *rand.Rand
}

// NewFallbackModel returns a heuristic model seeded with seed.
func NewFallbackModel(seed int64) *FallbackModel {
	return &FallbackModel{rng: rand.New(rand.NewSource(seed))}
}

func (m *FallbackModel) Name() string { return "heuristic-fallback" }

func (m *FallbackModel) Generate(_ context.Context, prompt string, _ int) (string, error) {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, "when", "year", "date"):
		return strconv.Itoa(1990 + m.rng.Intn(36)), nil
	case containsAny(p, "who", "person"):
		return pickString(m.rng, "einstein", "churchill", "gandhi"), nil
	case containsAny(p, "where", "country"):
		return pickString(m.rng, "usa", "uk", "germany", "france"), nil
	case containsAny(p, "how many", "count"):
		return strconv.Itoa(1 + m.rng.Intn(50)), nil
	case containsAny(p, "yes", "no"):
		return pickString(m.rng, "yes", "no"), nil
	default:
		return "unknown", nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func pickString(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// responsePrefixes are stripped from the front of raw completions.
var responsePrefixes = []string{"the answer is", "answer:", "the", "a", "an"}

// CleanResponse normalizes a raw completion to a short answer: prefixes
// stripped, first line and sentence only, a bare year extracted when the
// phrasing suggests one, and at most three words.
func CleanResponse(response string) string {
	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return "unknown"
	}

	for _, prefix := range responsePrefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimSpace(strings.TrimPrefix(response, prefix))
		}
	}

	if line, _, found := strings.Cut(response, "\n"); found {
		response = strings.TrimSpace(line)
	}
	if sentence, _, found := strings.Cut(response, "."); found {
		response = strings.TrimSpace(sentence)
	}

	if containsAny(response, "in", "during", "on") {
		if year := yearRe.FindString(response); year != "" {
			return year
		}
	}

	words := strings.Fields(response)
	if len(words) > 3 {
		words = words[:3]
	}
	cleaned := strings.Join(words, " ")
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}
