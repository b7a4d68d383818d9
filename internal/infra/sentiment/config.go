// Package sentiment provides hosted-model implementations of the sentiment
// classification provider. It includes adapters for Claude (Anthropic) and
// OpenAI APIs with reliability patterns, structured logging, and Prometheus
// metrics. Both adapters prompt the model to grade polarity on a five-star
// scale so the use case layer can map ratings onto sentiment classes the
// same way regardless of provider.
package sentiment

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	usecase "claritext/internal/usecase/sentiment"
)

const (
	// defaultMaxInputChars bounds the text sent to the model per request.
	defaultMaxInputChars = 10000
	minMaxInputChars     = 100
	maxMaxInputChars     = 100000
)

// loadMaxInputChars reads the per-request input bound from the environment.
// Invalid values fail closed.
//
// Environment variables:
//   - SENTIMENT_MAX_INPUT_CHARS: input bound (default: 10000, range: 100-100000)
func loadMaxInputChars() (int, error) {
	limit := defaultMaxInputChars

	if envLimit := os.Getenv("SENTIMENT_MAX_INPUT_CHARS"); envLimit != "" {
		parsed, err := strconv.Atoi(envLimit)
		if err != nil {
			return 0, fmt.Errorf("invalid SENTIMENT_MAX_INPUT_CHARS format: %s: %w", envLimit, err)
		}
		if parsed < minMaxInputChars || parsed > maxMaxInputChars {
			return 0, fmt.Errorf("SENTIMENT_MAX_INPUT_CHARS out of valid range [%d, %d]: %d",
				minMaxInputChars, maxMaxInputChars, parsed)
		}
		limit = parsed
	}

	return limit, nil
}

// buildPrompt constructs the classification prompt. The model is asked to
// answer with a bare JSON object so parseClassification can extract the
// star rating and confidence deterministically.
func buildPrompt(text string) string {
	return "Rate the sentiment of the following Spanish text on a scale from " +
		"\"1 star\" (very negative) to \"5 stars\" (very positive). " +
		"Answer with only a JSON object of the form " +
		`{"label":"4 stars","score":0.87} ` +
		"where score is your confidence between 0 and 1.\n\nText:\n" + text
}

// truncate bounds text to maxChars bytes, marking the cut.
func truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + "..."
}

// parseClassification extracts the star rating and confidence from a model
// reply. Models occasionally wrap the JSON in prose or code fences, so it
// scans for the outermost braces instead of unmarshaling the reply directly.
func parseClassification(reply string) (*usecase.Classification, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var parsed struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("malformed classification JSON: %w", err)
	}

	if strings.TrimSpace(parsed.Label) == "" {
		return nil, fmt.Errorf("classification reply missing label")
	}
	if parsed.Score < 0 || parsed.Score > 1 {
		return nil, fmt.Errorf("classification score out of range: %v", parsed.Score)
	}

	return &usecase.Classification{
		Label: parsed.Label,
		Score: parsed.Score,
	}, nil
}
