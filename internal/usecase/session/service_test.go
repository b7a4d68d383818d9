package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritext/internal/domain/entity"
	sessUC "claritext/internal/usecase/session"
)

type stubRepo struct {
	created []*entity.AnalysisSession
	stored  []*entity.AnalysisSession
	counts  map[string]int64
	err     error

	lastLimit int
}

func (s *stubRepo) Create(_ context.Context, sess *entity.AnalysisSession) error {
	if s.err != nil {
		return s.err
	}
	sess.ID = int64(len(s.created) + 1)
	s.created = append(s.created, sess)
	return nil
}

func (s *stubRepo) ListRecent(_ context.Context, limit int) ([]*entity.AnalysisSession, error) {
	s.lastLimit = limit
	return s.stored, s.err
}

func (s *stubRepo) CountByOperation(_ context.Context) (map[string]int64, error) {
	return s.counts, s.err
}

func TestRecord(t *testing.T) {
	repo := &stubRepo{}
	svc := &sessUC.Service{Repo: repo}

	sess := &entity.AnalysisSession{Operation: "normalize", Mode: "full", InputChars: 24, Result: "ok"}
	require.NoError(t, svc.Record(context.Background(), sess))

	assert.EqualValues(t, 1, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero(), "CreatedAt must be filled in")
}

func TestRecordInvalidSession(t *testing.T) {
	svc := &sessUC.Service{Repo: &stubRepo{}}

	err := svc.Record(context.Background(), &entity.AnalysisSession{})
	assert.ErrorIs(t, err, entity.ErrInvalidSession)
}

func TestRecordRepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := &sessUC.Service{Repo: &stubRepo{err: boom}}

	err := svc.Record(context.Background(), &entity.AnalysisSession{Operation: "summarize"})
	assert.ErrorIs(t, err, boom)
}

func TestListRecentLimits(t *testing.T) {
	repo := &stubRepo{}
	svc := &sessUC.Service{Repo: repo}

	_, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit, "non-positive limit uses the default")

	_, err = svc.ListRecent(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit, "limits above the maximum are clamped")

	_, err = svc.ListRecent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.lastLimit)
}

func TestStats(t *testing.T) {
	repo := &stubRepo{counts: map[string]int64{"normalize": 3, "summarize": 1}}
	svc := &sessUC.Service{Repo: repo}

	counts, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts["normalize"])
}
