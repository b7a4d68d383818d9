package notify

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"claritext/internal/infra/notifier"
)

const (
	circuitBreakerThreshold = 5
	circuitBreakerTimeout   = 5 * time.Minute
	workerPoolTimeout       = 5 * time.Second
	notificationTimeout     = 30 * time.Second
)

// Service dispatches digest reports to all enabled channels without
// blocking the caller.
type Service interface {
	// NotifyDigestRun dispatches a report to every enabled channel. It
	// returns immediately; sends happen in background goroutines and
	// failures are logged, not propagated.
	NotifyDigestRun(ctx context.Context, report *notifier.Report) error

	// ChannelHealth returns the circuit breaker state per channel.
	ChannelHealth() []ChannelHealthStatus

	// Shutdown waits for in-flight notifications or the context deadline.
	Shutdown(ctx context.Context) error
}

// ChannelHealthStatus describes one channel for health endpoints.
type ChannelHealthStatus struct {
	Name               string
	Enabled            bool
	CircuitBreakerOpen bool
	DisabledUntil      *time.Time
}

type service struct {
	channels       []Channel
	workerPool     chan struct{}
	channelHealth  map[string]*channelHealth
	healthMu       sync.RWMutex
	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

type channelHealth struct {
	consecutiveFailures int
	disabledUntil       time.Time
	mu                  sync.Mutex
}

// NewService creates a dispatcher over the given channels with at most
// maxConcurrent sends in flight.
func NewService(channels []Channel, maxConcurrent int) Service {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	svc := &service{
		channels:       channels,
		workerPool:     make(chan struct{}, maxConcurrent),
		channelHealth:  make(map[string]*channelHealth),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	for _, ch := range channels {
		svc.channelHealth[ch.Name()] = &channelHealth{}
	}

	return svc
}

func (s *service) NotifyDigestRun(_ context.Context, report *notifier.Report) error {
	if report == nil {
		slog.Warn("skipping notification for nil digest report")
		return nil
	}

	enabledCount := 0
	for _, ch := range s.channels {
		if ch.IsEnabled() {
			enabledCount++
		}
	}
	setChannelsEnabled(float64(enabledCount))

	if enabledCount == 0 {
		slog.Debug("no notification channels enabled")
		return nil
	}

	slog.Info("dispatching digest report",
		slog.String("status", report.Status),
		slog.Int64("summarized", report.Summarized),
		slog.Int("enabled_channels", enabledCount))

	for _, ch := range s.channels {
		if ch.IsEnabled() {
			channel := ch
			s.wg.Add(1)
			go s.notifyChannel(channel, report)
		}
	}

	return nil
}

func (s *service) notifyChannel(channel Channel, report *notifier.Report) {
	defer s.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in notification channel",
				slog.String("channel", channel.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		slog.Warn("notification dropped, worker pool full",
			slog.String("channel", channel.Name()))
		recordDropped(channel.Name(), "pool_full")
		return
	}

	health := s.getChannelHealth(channel.Name())
	health.mu.Lock()
	if time.Now().Before(health.disabledUntil) {
		slog.Warn("channel temporarily disabled by circuit breaker",
			slog.String("channel", channel.Name()),
			slog.Time("disabled_until", health.disabledUntil))
		health.mu.Unlock()
		recordDropped(channel.Name(), "circuit_open")
		return
	}
	health.mu.Unlock()

	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()

	startTime := time.Now()
	recordDispatch(channel.Name())

	err := channel.Send(ctx, report)
	duration := time.Since(startTime)

	health.mu.Lock()
	if err != nil {
		health.consecutiveFailures++
		if health.consecutiveFailures >= circuitBreakerThreshold {
			health.disabledUntil = time.Now().Add(circuitBreakerTimeout)
			slog.Error("circuit breaker opened for channel",
				slog.String("channel", channel.Name()),
				slog.Int("consecutive_failures", health.consecutiveFailures))
			recordCircuitBreakerOpen(channel.Name())
		}
	} else {
		health.consecutiveFailures = 0
	}
	health.mu.Unlock()

	if err != nil {
		recordFailure(channel.Name(), duration)
		slog.Warn("channel notification failed",
			slog.String("channel", channel.Name()),
			slog.Duration("send_duration", duration),
			slog.Any("error", err))
	} else {
		recordSuccess(channel.Name(), duration)
		slog.Info("channel notification sent",
			slog.String("channel", channel.Name()),
			slog.Duration("send_duration", duration))
	}
}

func (s *service) getChannelHealth(channelName string) *channelHealth {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()
	return s.channelHealth[channelName]
}

func (s *service) ChannelHealth() []ChannelHealthStatus {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()

	statuses := make([]ChannelHealthStatus, 0, len(s.channels))
	for _, ch := range s.channels {
		health := s.channelHealth[ch.Name()]

		health.mu.Lock()
		var disabledUntil *time.Time
		open := false
		if time.Now().Before(health.disabledUntil) {
			open = true
			until := health.disabledUntil
			disabledUntil = &until
		}
		health.mu.Unlock()

		statuses = append(statuses, ChannelHealthStatus{
			Name:               ch.Name(),
			Enabled:            ch.IsEnabled(),
			CircuitBreakerOpen: open,
			DisabledUntil:      disabledUntil,
		})
	}

	return statuses
}

func (s *service) Shutdown(ctx context.Context) error {
	slog.Info("shutting down notification service")
	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		slog.Warn("notification service shutdown timeout")
		return ctx.Err()
	}
}
