// Package repository defines the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"claritext/internal/domain/entity"
)

// SessionRepository persists analysis sessions.
type SessionRepository interface {
	// Create stores a session and fills in its generated ID.
	Create(ctx context.Context, session *entity.AnalysisSession) error
	// ListRecent returns up to limit sessions, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.AnalysisSession, error)
	// CountByOperation returns how many sessions exist per operation name.
	CountByOperation(ctx context.Context) (map[string]int64, error)
}
