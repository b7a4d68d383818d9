package grpc

import (
	"context"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/usecase/entities"
)

// NoopAnnotator always reports the annotator as unavailable.
// Used when the external annotator is disabled; callers with a heuristic
// fallback degrade to it, the rest surface the unavailability.
type NoopAnnotator struct{}

// NewNoopAnnotator creates a new no-op annotator.
func NewNoopAnnotator() *NoopAnnotator {
	return &NoopAnnotator{}
}

// Annotate reports the annotator as unavailable.
func (n *NoopAnnotator) Annotate(ctx context.Context, text string) (*entity.Document, error) {
	return nil, annotate.ErrUnavailable
}

// Mode reports the full mode this client would provide if enabled.
func (n *NoopAnnotator) Mode() annotate.Mode {
	return annotate.ModeFull
}

// ExtractEntities reports the annotator as unavailable.
func (n *NoopAnnotator) ExtractEntities(ctx context.Context, text string) ([]entities.Entity, error) {
	return nil, annotate.ErrUnavailable
}

// Health returns unhealthy status with descriptive message.
func (n *NoopAnnotator) Health(ctx context.Context) (*HealthStatus, error) {
	return &HealthStatus{
		Healthy: false,
		Latency: 0,
		Message: "annotator is disabled",
	}, nil
}

// Close is a no-op.
func (n *NoopAnnotator) Close() error {
	return nil
}
