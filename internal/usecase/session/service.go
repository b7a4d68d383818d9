// Package session records text-processing invocations and serves their
// history. Recording is best-effort plumbing around the pure cores: a
// storage failure is logged, never propagated into the text result.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"claritext/internal/domain/entity"
	"claritext/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service provides session recording and history.
type Service struct {
	Repo repository.SessionRepository
}

// Record validates and persists one analysis session. The caller decides
// whether a failure matters; handlers treat it as best-effort.
func (s *Service) Record(ctx context.Context, sess *entity.AnalysisSession) error {
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	if err := s.Repo.Create(ctx, sess); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// RecordAsync persists a session without blocking the request path,
// logging failures instead of returning them.
func (s *Service) RecordAsync(sess *entity.AnalysisSession) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Record(ctx, sess); err != nil {
			slog.Error("failed to record analysis session",
				slog.String("operation", sess.Operation),
				slog.Any("error", err))
		}
	}()
}

// ListRecent returns the newest sessions. A non-positive limit falls back
// to the default; limits above the maximum are clamped.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*entity.AnalysisSession, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	sessions, err := s.Repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Stats returns session counts grouped by operation.
func (s *Service) Stats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.Repo.CountByOperation(ctx)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}
	return counts, nil
}
