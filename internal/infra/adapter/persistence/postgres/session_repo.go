package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"claritext/internal/domain/entity"
	"claritext/internal/repository"
)

type SessionRepo struct{ db *sql.DB }

func NewSessionRepo(db *sql.DB) repository.SessionRepository {
	return &SessionRepo{db: db}
}

func (repo *SessionRepo) Create(ctx context.Context, session *entity.AnalysisSession) error {
	const query = `
INSERT INTO analysis_sessions (operation, mode, input_chars, result, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		session.Operation, session.Mode, session.InputChars, session.Result, session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *SessionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.AnalysisSession, error) {
	const query = `
SELECT id, operation, mode, input_chars, result, created_at
FROM analysis_sessions
ORDER BY created_at DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sessions := make([]*entity.AnalysisSession, 0, limit)
	for rows.Next() {
		var session entity.AnalysisSession
		if err := rows.Scan(
			&session.ID, &session.Operation, &session.Mode,
			&session.InputChars, &session.Result, &session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRecent: %w", err)
		}
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

func (repo *SessionRepo) CountByOperation(ctx context.Context) (map[string]int64, error) {
	const query = `
SELECT operation, COUNT(*)
FROM analysis_sessions
GROUP BY operation`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CountByOperation: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int64)
	for rows.Next() {
		var operation string
		var count int64
		if err := rows.Scan(&operation, &count); err != nil {
			return nil, fmt.Errorf("CountByOperation: %w", err)
		}
		counts[operation] = count
	}
	return counts, rows.Err()
}
