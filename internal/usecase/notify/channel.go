// Package notify dispatches digest run reports to the configured delivery
// channels (Slack, Discord) without blocking the digest worker. Dispatch is
// asynchronous with a bounded worker pool and a per-channel circuit
// breaker.
package notify

import (
	"context"

	"claritext/internal/infra/notifier"
)

// Channel is a notification delivery target. Implementations handle their
// own rate limiting and retries, and must be safe for concurrent use.
type Channel interface {
	// Name identifies the channel in logs, metrics, and health output.
	Name() string

	// IsEnabled reports whether the channel is configured to receive
	// reports. Disabled channels are skipped during dispatch.
	IsEnabled() bool

	// Send delivers one digest report. Returns ErrChannelDisabled when
	// called on a disabled channel.
	Send(ctx context.Context, report *notifier.Report) error
}
