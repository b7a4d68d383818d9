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

// DiscordConfig configures Discord webhook notifications.
type DiscordConfig struct {
	Enabled    bool
	WebhookURL string
	Timeout    time.Duration
}

// DiscordNotifier sends digest reports to Discord via a webhook.
type DiscordNotifier struct {
	config      DiscordConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewDiscordNotifier creates a Discord notifier. Rate limited to 5 req/s,
// half of Discord's 10 req/s webhook limit.
func NewDiscordNotifier(config DiscordConfig) *DiscordNotifier {
	return &DiscordNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(5.0, 5),
	}
}

// DiscordWebhookPayload is the JSON body posted to the webhook.
type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Color       int                 `json:"color"`
	Timestamp   string              `json:"timestamp"`
	Fields      []DiscordEmbedField `json:"fields,omitempty"`
}

type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

const (
	discordColorGreen = 0x2ecc71
	discordColorRed   = 0xe74c3c

	maxEmbedDescriptionLength = 4096
)

func (d *DiscordNotifier) buildEmbedPayload(report *Report) DiscordWebhookPayload {
	title := "Digest run succeeded"
	color := discordColorGreen
	description := ""
	if !report.Succeeded() {
		title = "Digest run failed"
		color = discordColorRed
		description = truncateText(report.Error, maxEmbedDescriptionLength, "...")
	}

	fields := []DiscordEmbedField{
		{Name: "Feeds", Value: fmt.Sprintf("%d (%d errors)", report.Feeds, report.FeedErrors), Inline: true},
		{Name: "Items", Value: fmt.Sprintf("%d (%d skipped)", report.Items, report.Skipped), Inline: true},
		{Name: "Summarized", Value: fmt.Sprintf("%d (%d errors)", report.Summarized, report.SummarizeErrors), Inline: true},
		{Name: "Duration", Value: report.Duration.Round(time.Second).String(), Inline: true},
	}

	return DiscordWebhookPayload{
		Embeds: []DiscordEmbed{
			{
				Title:       title,
				Description: description,
				Color:       color,
				Timestamp:   report.FinishedAt.Format(time.RFC3339),
				Fields:      fields,
			},
		},
	}
}

func (d *DiscordNotifier) sendWebhookRequest(ctx context.Context, report *Report) error {
	payload := d.buildEmbedPayload(report)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
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
			Message:    "Discord rate limit exceeded",
			RetryAfter: extractRetryAfter(resp),
		}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ClientError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Discord API client error: %s", string(body)),
		}
	}

	if resp.StatusCode >= 500 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Discord API server error: %s", string(body)),
		}
	}

	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
}

func (d *DiscordNotifier) sendWebhookRequestWithRetry(ctx context.Context, report *Report) error {
	const (
		maxAttempts = 2
		baseDelay   = 5 * time.Second
	)

	requestID, _ := ctx.Value(requestIDKey).(string)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := d.sendWebhookRequest(ctx, report)
		if err == nil {
			slog.Info("discord notification sent",
				slog.String("request_id", requestID),
				slog.String("digest_status", report.Status),
				slog.Int("attempt", attempt))
			return nil
		}

		lastErr = err

		if rateLimitErr, ok := is429Error(err); ok {
			slog.Warn("discord rate limit hit, backing off",
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
			slog.Error("discord notification failed with non-retryable error",
				slog.String("request_id", requestID),
				slog.Any("error", err),
				slog.Int("attempt", attempt))
			return err
		}

		if attempt < maxAttempts {
			delay := baseDelay * time.Duration(attempt)
			slog.Warn("discord webhook request failed, retrying",
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

	return fmt.Errorf("discord notification failed after %d attempts: %w", maxAttempts, lastErr)
}

// NotifyDigest sends the report, applying rate limiting first.
func (d *DiscordNotifier) NotifyDigest(ctx context.Context, report *Report) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	if err := d.rateLimiter.Allow(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	return d.sendWebhookRequestWithRetry(ctx, report)
}
