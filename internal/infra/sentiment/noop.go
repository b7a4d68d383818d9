package sentiment

import (
	"context"

	usecase "claritext/internal/usecase/sentiment"
)

// NoOp is a provider used when no sentiment API key is configured.
// Every call reports the feature as disabled.
type NoOp struct{}

// NewNoOp creates a new NoOp provider.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Classify reports sentiment analysis as disabled.
func (n *NoOp) Classify(_ context.Context, _ string) (*usecase.Classification, error) {
	return nil, usecase.ErrDisabled
}

// Close is a no-op.
func (n *NoOp) Close() error {
	return nil
}
