package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"claritext/internal/resilience/circuitbreaker"
	"claritext/internal/resilience/retry"
	usecase "claritext/internal/usecase/sentiment"
	"claritext/internal/utils/text"
)

// ClaudeConfig holds configuration parameters for the Claude classifier.
type ClaudeConfig struct {
	// Model is the Claude API model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	// Classification replies are a single short JSON object.
	MaxTokens int

	// Timeout is the maximum duration for a single classification API call.
	Timeout time.Duration

	// MaxInputChars bounds the text sent per request.
	// Loaded from SENTIMENT_MAX_INPUT_CHARS. Default: 10000.
	MaxInputChars int
}

// LoadClaudeConfig loads configuration from environment variables.
// Returns an error if the input bound is invalid (fail-closed behavior).
func LoadClaudeConfig() (*ClaudeConfig, error) {
	maxInput, err := loadMaxInputChars()
	if err != nil {
		return nil, fmt.Errorf("invalid Claude classifier configuration: %w", err)
	}

	return &ClaudeConfig{
		Model:         string(anthropic.ModelClaudeSonnet4_5_20250929),
		MaxTokens:     128,
		Timeout:       60 * time.Second,
		MaxInputChars: maxInput,
	}, nil
}

// Claude implements the sentiment provider using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          *ClaudeConfig
	metricsRecorder ClassificationMetricsRecorder
}

// NewClaude creates a new Claude classifier with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics
// recording.
func NewClaude(apiKey string) (*Claude, error) {
	config, err := LoadClaudeConfig()
	if err != nil {
		return nil, err
	}

	slog.Info("initialized Claude sentiment classifier",
		slog.String("model", config.Model),
		slog.Int("max_input_chars", config.MaxInputChars))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.ModelAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusClassificationMetrics(),
	}, nil
}

// Classify grades the polarity of the given text using Claude.
// It uses circuit breaker and retry logic for improved reliability.
func (c *Claude) Classify(ctx context.Context, input string) (*usecase.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result *usecase.Classification

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doClassify(ctx, input)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(*usecase.Classification)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("claude classify failed after retries: %w", retryErr)
	}

	return result, nil
}

// doClassify performs the actual API call without retry or circuit breaker.
func (c *Claude) doClassify(ctx context.Context, input string) (*usecase.Classification, error) {
	requestID := uuid.New().String()

	truncated := truncate(input, c.config.MaxInputChars)
	if len(truncated) < len(input) {
		slog.Warn("text truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(input)),
			slog.Int("truncated_length", len(truncated)))
	}

	slog.InfoContext(ctx, "starting sentiment classification",
		slog.String("request_id", requestID),
		slog.Int("input_length", text.CountRunes(truncated)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(buildPrompt(truncated)),
			),
		},
	})

	duration := time.Since(start)
	c.metricsRecorder.RecordDuration(duration)

	if err != nil {
		slog.ErrorContext(ctx, "classification failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned unexpected response type")
	}

	classification, err := parseClassification(textBlock.Text)
	if err != nil {
		c.metricsRecorder.RecordParseFailure()
		slog.ErrorContext(ctx, "unparseable classification reply",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude reply: %w", err)
	}

	c.metricsRecorder.RecordConfidence(classification.Score)

	slog.InfoContext(ctx, "classification completed",
		slog.String("request_id", requestID),
		slog.String("label", classification.Label),
		slog.Float64("score", classification.Score),
		slog.Duration("duration", duration))

	return classification, nil
}

// Close is a no-op; the Claude client holds no persistent connections.
func (c *Claude) Close() error {
	return nil
}
