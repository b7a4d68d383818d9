package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testReport(status string) *Report {
	return &Report{
		Status:          status,
		Feeds:           3,
		FeedErrors:      1,
		Items:           42,
		Skipped:         30,
		Summarized:      12,
		SummarizeErrors: 0,
		Duration:        4 * time.Minute,
		FinishedAt:      time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC),
	}
}

func newSlackTestNotifier(url string) *SlackNotifier {
	return NewSlackNotifier(SlackConfig{
		Enabled:    true,
		WebhookURL: url,
		Timeout:    5 * time.Second,
	})
}

func TestSlackNotifier_NotifyDigest_Success(t *testing.T) {
	var received SlackWebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n := newSlackTestNotifier(server.URL)
	if err := n.NotifyDigest(context.Background(), testReport("success")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(received.Blocks))
	}
	if !strings.Contains(received.Blocks[0].Text.Text, "Digest run succeeded") {
		t.Errorf("unexpected section text: %s", received.Blocks[0].Text.Text)
	}
	if !strings.Contains(received.Blocks[0].Text.Text, "Summarized: 12") {
		t.Errorf("expected summarized count in section: %s", received.Blocks[0].Text.Text)
	}
}

func TestSlackNotifier_NotifyDigest_FailureReport(t *testing.T) {
	var received SlackWebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	report := testReport("failure")
	report.Error = "no feeds configured"

	n := newSlackTestNotifier(server.URL)
	if err := n.NotifyDigest(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(received.Blocks[0].Text.Text, "Digest run failed") {
		t.Errorf("unexpected section text: %s", received.Blocks[0].Text.Text)
	}
	if !strings.Contains(received.Blocks[0].Text.Text, "no feeds configured") {
		t.Errorf("expected failure message in section: %s", received.Blocks[0].Text.Text)
	}
}

func TestSlackNotifier_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid_payload"))
	}))
	defer server.Close()

	n := newSlackTestNotifier(server.URL)
	err := n.NotifyDigest(context.Background(), testReport("success"))
	if err == nil {
		t.Fatal("expected error for 400 response")
	}

	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Errorf("expected ClientError, got %T: %v", err, err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", got)
	}
}

func TestSlackNotifier_RateLimitRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0.01")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := newSlackTestNotifier(server.URL)
	if err := n.NotifyDigest(context.Background(), testReport("success")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}

func TestSlackNotifier_ServerErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := newSlackTestNotifier(server.URL)
	err := n.sendWebhookRequest(context.Background(), testReport("success"))

	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected ServerError, got %T: %v", err, err)
	}
	if !isRetryableError(err) {
		t.Error("expected server error to be retryable")
	}
}

func TestSlackNotifier_FallbackTextTruncated(t *testing.T) {
	n := newSlackTestNotifier("http://example.invalid")
	report := testReport("success")
	payload := n.buildBlockKitPayload(report)

	if len(payload.Text) > maxFallbackLength {
		t.Errorf("fallback text exceeds limit: %d chars", len(payload.Text))
	}
}
