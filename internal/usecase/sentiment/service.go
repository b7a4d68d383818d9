// Package sentiment classifies text polarity by delegating to a pretrained
// model provider and mapping its star-rating labels onto three classes.
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"claritext/internal/domain/entity"
)

// ErrDisabled is returned when no sentiment provider is configured.
var ErrDisabled = errors.New("sentiment analysis is disabled")

// Classification is the raw provider output: a star-rating label such as
// "4 stars" and the model's confidence for it.
type Classification struct {
	Label string
	Score float64
}

// Provider classifies text with a pretrained sentiment model.
type Provider interface {
	Classify(ctx context.Context, text string) (*Classification, error)
	Close() error
}

// Result is the mapped classification.
type Result struct {
	Sentiment  string // "Negative", "Neutral", or "Positive"
	Confidence float64
	RawLabel   string
}

// Service maps provider star-rating labels onto sentiment classes:
// 1–2 stars are negative, 3 neutral, 4–5 positive.
type Service struct {
	provider Provider
}

// NewService creates the sentiment service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Classify returns the sentiment of text.
// Returns entity.ErrEmptyInput for blank input, checked before the provider
// call, and the provider's error otherwise.
func (s *Service) Classify(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyInput
	}

	c, err := s.provider.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	return &Result{
		Sentiment:  mapLabel(c.Label),
		Confidence: c.Score,
		RawLabel:   c.Label,
	}, nil
}

func mapLabel(label string) string {
	switch {
	case strings.Contains(label, "1"), strings.Contains(label, "2"):
		return "Negative"
	case strings.Contains(label, "3"):
		return "Neutral"
	default:
		return "Positive"
	}
}
