package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"claritext/internal/infra/notifier"
)

type stubChannel struct {
	name    string
	enabled bool
	sendErr error

	mu    sync.Mutex
	calls int
	last  *notifier.Report
}

func (c *stubChannel) Name() string    { return c.name }
func (c *stubChannel) IsEnabled() bool { return c.enabled }

func (c *stubChannel) Send(_ context.Context, report *notifier.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.last = report
	return c.sendErr
}

func (c *stubChannel) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func successReport() *notifier.Report {
	return &notifier.Report{
		Status:     "success",
		Summarized: 7,
		FinishedAt: time.Now(),
	}
}

func shutdownService(t *testing.T, svc Service) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := svc.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestService_DispatchesToEnabledChannels(t *testing.T) {
	enabled := &stubChannel{name: "slack", enabled: true}
	disabled := &stubChannel{name: "discord", enabled: false}
	svc := NewService([]Channel{enabled, disabled}, 4)

	if err := svc.NotifyDigestRun(context.Background(), successReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shutdownService(t, svc)

	if enabled.callCount() != 1 {
		t.Errorf("enabled channel: expected 1 send, got %d", enabled.callCount())
	}
	if disabled.callCount() != 0 {
		t.Errorf("disabled channel: expected 0 sends, got %d", disabled.callCount())
	}
}

func TestService_NilReportSkipped(t *testing.T) {
	ch := &stubChannel{name: "slack", enabled: true}
	svc := NewService([]Channel{ch}, 4)

	if err := svc.NotifyDigestRun(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shutdownService(t, svc)

	if ch.callCount() != 0 {
		t.Errorf("expected 0 sends for nil report, got %d", ch.callCount())
	}
}

func TestService_CircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ch := &stubChannel{name: "slack", enabled: true, sendErr: errors.New("webhook down")}
	svc := NewService([]Channel{ch}, 1)

	// Sends run one at a time through the single worker slot, so failures
	// accumulate sequentially.
	for i := 0; i < circuitBreakerThreshold; i++ {
		if err := svc.NotifyDigestRun(context.Background(), successReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	shutdownService(t, svc)

	health := svc.ChannelHealth()
	if len(health) != 1 {
		t.Fatalf("expected 1 channel health entry, got %d", len(health))
	}
	if !health[0].CircuitBreakerOpen {
		t.Error("expected circuit breaker to be open")
	}
	if health[0].DisabledUntil == nil {
		t.Error("expected DisabledUntil to be set")
	}

	// Further dispatches are dropped without calling the channel.
	before := ch.callCount()
	if err := svc.NotifyDigestRun(context.Background(), successReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = svc.Shutdown(ctx)

	if ch.callCount() != before {
		t.Errorf("expected no sends while circuit open, got %d new", ch.callCount()-before)
	}
}

func TestService_ChannelHealthReflectsEnabledFlag(t *testing.T) {
	svc := NewService([]Channel{
		&stubChannel{name: "slack", enabled: true},
		&stubChannel{name: "discord", enabled: false},
	}, 2)
	defer shutdownService(t, svc)

	health := svc.ChannelHealth()
	if len(health) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(health))
	}
	byName := map[string]ChannelHealthStatus{}
	for _, h := range health {
		byName[h.Name] = h
	}
	if !byName["slack"].Enabled {
		t.Error("expected slack enabled")
	}
	if byName["discord"].Enabled {
		t.Error("expected discord disabled")
	}
}

func TestService_PanicInChannelRecovered(t *testing.T) {
	svc := NewService([]Channel{panicChannel{}}, 1)

	if err := svc.NotifyDigestRun(context.Background(), successReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shutdownService(t, svc)
}

type panicChannel struct{}

func (panicChannel) Name() string    { return "panic" }
func (panicChannel) IsEnabled() bool { return true }
func (panicChannel) Send(_ context.Context, _ *notifier.Report) error {
	panic("channel exploded")
}
