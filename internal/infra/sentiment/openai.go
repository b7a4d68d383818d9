package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"claritext/internal/resilience/circuitbreaker"
	"claritext/internal/resilience/retry"
	usecase "claritext/internal/usecase/sentiment"
	"claritext/internal/utils/text"
)

// OpenAIConfig holds configuration parameters for the OpenAI classifier.
type OpenAIConfig struct {
	// Model is the OpenAI API model identifier.
	Model string

	// Timeout is the maximum duration for a single classification API call.
	Timeout time.Duration

	// MaxInputChars bounds the text sent per request.
	// Loaded from SENTIMENT_MAX_INPUT_CHARS. Default: 10000.
	MaxInputChars int
}

// LoadOpenAIConfig loads configuration from environment variables.
// Returns an error if the input bound is invalid (fail-closed behavior).
func LoadOpenAIConfig() (*OpenAIConfig, error) {
	maxInput, err := loadMaxInputChars()
	if err != nil {
		return nil, fmt.Errorf("invalid OpenAI classifier configuration: %w", err)
	}

	return &OpenAIConfig{
		Model:         "gpt-3.5-turbo",
		Timeout:       60 * time.Second,
		MaxInputChars: maxInput,
	}, nil
}

// OpenAI implements the sentiment provider using OpenAI's GPT API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          *OpenAIConfig
	metricsRecorder ClassificationMetricsRecorder
}

// NewOpenAI creates a new OpenAI classifier with the given API key.
func NewOpenAI(apiKey string) (*OpenAI, error) {
	config, err := LoadOpenAIConfig()
	if err != nil {
		return nil, err
	}

	slog.Info("initialized OpenAI sentiment classifier",
		slog.String("model", config.Model),
		slog.Int("max_input_chars", config.MaxInputChars))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.ModelAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusClassificationMetrics(),
	}, nil
}

// Classify grades the polarity of the given text using OpenAI's GPT API.
// It uses circuit breaker and retry logic for improved reliability.
func (o *OpenAI) Classify(ctx context.Context, input string) (*usecase.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result *usecase.Classification

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doClassify(ctx, input)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(*usecase.Classification)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("openai classify failed after retries: %w", retryErr)
	}

	return result, nil
}

// doClassify performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doClassify(ctx context.Context, input string) (*usecase.Classification, error) {
	truncated := truncate(input, o.config.MaxInputChars)
	if len(truncated) < len(input) {
		slog.Warn("text truncated for openai api",
			slog.Int("original_length", len(input)),
			slog.Int("truncated_length", len(truncated)))
	}

	slog.InfoContext(ctx, "starting sentiment classification",
		slog.Int("input_length", text.CountRunes(truncated)))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    "system",
			Content: buildPrompt(truncated),
		}},
	})

	duration := time.Since(start)
	o.metricsRecorder.RecordDuration(duration)

	if err != nil {
		slog.ErrorContext(ctx, "classification failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("openai api returned empty response")
	}

	classification, err := parseClassification(resp.Choices[0].Message.Content)
	if err != nil {
		o.metricsRecorder.RecordParseFailure()
		slog.ErrorContext(ctx, "unparseable classification reply",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai reply: %w", err)
	}

	o.metricsRecorder.RecordConfidence(classification.Score)

	slog.InfoContext(ctx, "classification completed",
		slog.String("label", classification.Label),
		slog.Float64("score", classification.Score),
		slog.Duration("duration", duration))

	return classification, nil
}

// Close is a no-op; the OpenAI client holds no persistent connections.
func (o *OpenAI) Close() error {
	return nil
}
