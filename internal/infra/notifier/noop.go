package notifier

import (
	"context"
)

// NoOpNotifier discards reports. Used when notifications are disabled so
// callers never need a nil check.
type NoOpNotifier struct{}

func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

func (n *NoOpNotifier) NotifyDigest(_ context.Context, _ *Report) error {
	return nil
}
