package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SlackConfig configures Slack Incoming Webhook notifications.
type SlackConfig struct {
	Enabled    bool
	WebhookURL string
	Timeout    time.Duration
}

// SlackNotifier sends digest reports to Slack via an Incoming Webhook.
type SlackNotifier struct {
	config      SlackConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewSlackNotifier creates a Slack notifier. The rate limiter is fixed at
// 1 req/s with burst 1, matching the Incoming Webhook limit.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(1.0, 1),
	}
}

// SlackWebhookPayload is the Block Kit payload posted to the webhook.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

type SlackBlock struct {
	Type     string            `json:"type"`
	Text     *SlackTextObject  `json:"text,omitempty"`
	Elements []SlackTextObject `json:"elements,omitempty"`
}

type SlackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const (
	maxSectionTextLength  = 3000
	maxFallbackLength     = 150
	slackTruncationSuffix = "..."
)

// buildBlockKitPayload renders a report as a section block with the run
// counters and a context block with the timestamp.
func (s *SlackNotifier) buildBlockKitPayload(report *Report) SlackWebhookPayload {
	fallbackText := fmt.Sprintf("Digest %s: %d summarized", report.Status, report.Summarized)
	fallbackText = truncateText(fallbackText, maxFallbackLength, slackTruncationSuffix)

	var headline string
	if report.Succeeded() {
		headline = "*Digest run succeeded*"
	} else {
		headline = fmt.Sprintf("*Digest run failed*\n%s", report.Error)
	}

	sectionText := fmt.Sprintf("%s\nFeeds: %d (%d errors)\nItems: %d, skipped %d\nSummarized: %d (%d errors)",
		headline,
		report.Feeds, report.FeedErrors,
		report.Items, report.Skipped,
		report.Summarized, report.SummarizeErrors)
	sectionText = truncateText(sectionText, maxSectionTextLength, slackTruncationSuffix)

	contextText := fmt.Sprintf("claritext worker • %s • took %s",
		report.FinishedAt.Format(time.RFC3339), report.Duration.Round(time.Second))

	return SlackWebhookPayload{
		Text: fallbackText,
		Blocks: []SlackBlock{
			{
				Type: "section",
				Text: &SlackTextObject{Type: "mrkdwn", Text: sectionText},
			},
			{
				Type:     "context",
				Elements: []SlackTextObject{{Type: "mrkdwn", Text: contextText}},
			},
		},
	}
}

func (s *SlackNotifier) sendWebhookRequest(ctx context.Context, report *Report) error {
	payload := s.buildBlockKitPayload(report)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Message:    "Slack rate limit exceeded",
			RetryAfter: extractRetryAfter(resp),
		}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Slack API client error: %s", string(body)),
		}
	}

	if resp.StatusCode >= 500 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Slack API server error: %s", string(body)),
		}
	}

	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
}

// sendWebhookRequestWithRetry retries server errors with linear backoff
// (max 2 attempts) and honors Retry-After on 429. Client errors fail
// immediately.
func (s *SlackNotifier) sendWebhookRequestWithRetry(ctx context.Context, report *Report) error {
	const (
		maxAttempts = 2
		baseDelay   = 5 * time.Second
	)

	requestID, _ := ctx.Value(requestIDKey).(string)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := s.sendWebhookRequest(ctx, report)
		if err == nil {
			slog.Info("slack notification sent",
				slog.String("request_id", requestID),
				slog.String("digest_status", report.Status),
				slog.Int("attempt", attempt))
			return nil
		}

		lastErr = err

		if rateLimitErr, ok := is429Error(err); ok {
			slog.Warn("slack rate limit hit, backing off",
				slog.String("request_id", requestID),
				slog.Duration("retry_after", rateLimitErr.RetryAfter),
				slog.Int("attempt", attempt))

			select {
			case <-time.After(rateLimitErr.RetryAfter):
				continue
			case <-ctx.Done():
				return fmt.Errorf("context canceled during rate limit backoff: %w", ctx.Err())
			}
		}

		if !isRetryableError(err) {
			slog.Error("slack notification failed with non-retryable error",
				slog.String("request_id", requestID),
				slog.Any("error", err),
				slog.Int("attempt", attempt))
			return err
		}

		if attempt < maxAttempts {
			delay := baseDelay * time.Duration(attempt)
			slog.Warn("slack webhook request failed, retrying",
				slog.String("request_id", requestID),
				slog.Any("error", err),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay))

			select {
			case <-time.After(delay):
				continue
			case <-ctx.Done():
				return fmt.Errorf("context canceled during retry backoff: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("slack notification failed after %d attempts: %w", maxAttempts, lastErr)
}

// NotifyDigest sends the report, applying rate limiting first.
func (s *SlackNotifier) NotifyDigest(ctx context.Context, report *Report) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	if err := s.rateLimiter.Allow(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	return s.sendWebhookRequestWithRetry(ctx, report)
}
