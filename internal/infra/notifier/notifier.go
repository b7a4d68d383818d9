// Package notifier sends digest run reports to external webhook services.
// It provides Slack and Discord implementations plus a no-op notifier for
// when notifications are disabled. Implementations handle rate limiting
// and retries internally.
package notifier

import (
	"context"
	"time"
)

// Report summarizes one digest run for notification purposes.
type Report struct {
	Status          string // "success" or "failure"
	Error           string // sanitized failure message, empty on success
	Feeds           int
	FeedErrors      int
	Items           int64
	Skipped         int64
	Summarized      int64
	SummarizeErrors int64
	Duration        time.Duration
	FinishedAt      time.Time
}

// Succeeded reports whether the run completed without a fatal error.
func (r *Report) Succeeded() bool {
	return r.Status == "success"
}

// Notifier sends digest run reports to a delivery target.
type Notifier interface {
	// NotifyDigest sends a report about a completed digest run. It must
	// respect context cancellation and return a non-nil error only after
	// exhausting its retry policy.
	NotifyDigest(ctx context.Context, report *Report) error
}
