package digest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/usecase/session"
	"claritext/internal/usecase/summarize"
)

type stubFeedFetcher struct {
	items map[string][]FeedItem
	err   error
}

func (f *stubFeedFetcher) Fetch(_ context.Context, url string) ([]FeedItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[url], nil
}

type stubContentFetcher struct {
	content string
	err     error

	mu    sync.Mutex
	calls []string
}

func (f *stubContentFetcher) FetchContent(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

type stubSummarizer struct {
	err error

	mu    sync.Mutex
	texts []string
}

func (s *stubSummarizer) Summarize(_ context.Context, text string, _ int) (*summarize.Result, error) {
	s.mu.Lock()
	s.texts = append(s.texts, text)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &summarize.Result{Summary: "resumen de " + text, Mode: annotate.ModeFull}, nil
}

type memorySessionRepo struct {
	mu       sync.Mutex
	sessions []*entity.AnalysisSession
}

func (r *memorySessionRepo) Create(_ context.Context, s *entity.AnalysisSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = int64(len(r.sessions) + 1)
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *memorySessionRepo) ListRecent(_ context.Context, _ int) ([]*entity.AnalysisSession, error) {
	return nil, nil
}

func (r *memorySessionRepo) CountByOperation(_ context.Context) (map[string]int64, error) {
	return nil, nil
}

func (r *memorySessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func TestRun_SummarizesAllItems(t *testing.T) {
	feeds := &stubFeedFetcher{items: map[string][]FeedItem{
		"https://example.com/feed": {
			{Title: "Uno", URL: "https://example.com/1", Content: "El mercado abre temprano cada día."},
			{Title: "Dos", URL: "https://example.com/2", Content: "Los pescadores vuelven al puerto."},
		},
	}}
	summarizer := &stubSummarizer{}

	svc := NewService([]string{"https://example.com/feed"}, feeds, nil, summarizer, nil, DefaultConfig())

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Feeds)
	assert.Equal(t, int64(2), stats.Items)
	assert.Equal(t, int64(2), stats.Summarized)
	assert.Equal(t, int64(0), stats.SummarizeErrors)
	assert.Len(t, summarizer.texts, 2)
}

func TestRun_FeedErrorDoesNotStopRun(t *testing.T) {
	feeds := &stubFeedFetcher{err: errors.New("connection refused")}
	summarizer := &stubSummarizer{}

	svc := NewService([]string{"https://a.example/feed", "https://b.example/feed"},
		feeds, nil, summarizer, nil, DefaultConfig())

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Feeds)
	assert.Equal(t, 2, stats.FeedErrors)
}

func TestRun_SummarizeErrorSkipsItem(t *testing.T) {
	feeds := &stubFeedFetcher{items: map[string][]FeedItem{
		"https://example.com/feed": {
			{Title: "Uno", URL: "https://example.com/1", Content: "Texto de prueba."},
		},
	}}
	summarizer := &stubSummarizer{err: errors.New("annotator down")}

	svc := NewService([]string{"https://example.com/feed"}, feeds, nil, summarizer, nil, DefaultConfig())

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Items)
	assert.Equal(t, int64(0), stats.Summarized)
	assert.Equal(t, int64(1), stats.SummarizeErrors)
}

func TestRun_ContextCancellationPropagates(t *testing.T) {
	feeds := &stubFeedFetcher{items: map[string][]FeedItem{
		"https://example.com/feed": {
			{Title: "Uno", URL: "https://example.com/1", Content: "Texto de prueba."},
		},
	}}
	summarizer := &stubSummarizer{err: context.Canceled}

	svc := NewService([]string{"https://example.com/feed"}, feeds, nil, summarizer, nil, DefaultConfig())

	_, err := svc.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_SkipsEmptyItems(t *testing.T) {
	feeds := &stubFeedFetcher{items: map[string][]FeedItem{
		"https://example.com/feed": {
			{Title: "Vacío", URL: "https://example.com/1", Content: "   "},
		},
	}}
	summarizer := &stubSummarizer{}

	svc := NewService([]string{"https://example.com/feed"}, feeds, nil, summarizer, nil, DefaultConfig())

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Skipped)
	assert.Empty(t, summarizer.texts)
}

func TestRun_RecordsSessions(t *testing.T) {
	feeds := &stubFeedFetcher{items: map[string][]FeedItem{
		"https://example.com/feed": {
			{Title: "Uno", URL: "https://example.com/1", Content: "El mercado abre temprano."},
		},
	}}
	repo := &memorySessionRepo{}
	sessions := &session.Service{Repo: repo}

	svc := NewService([]string{"https://example.com/feed"}, feeds, nil, &stubSummarizer{}, sessions, DefaultConfig())

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	// Recording is asynchronous.
	require.Eventually(t, func() bool { return repo.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	sess := repo.sessions[0]
	assert.Equal(t, "digest", sess.Operation)
	assert.Equal(t, "full", sess.Mode)
	assert.Contains(t, sess.Result, "Uno")
	assert.Contains(t, sess.Result, "resumen de")
	assert.Positive(t, sess.InputChars)
}

func TestEnhanceContent_FetchesWhenShort(t *testing.T) {
	fetcher := &stubContentFetcher{content: "Artículo completo con mucho más contenido que la entrada del feed."}
	cfg := DefaultConfig()
	cfg.ContentThreshold = 100

	svc := NewService(nil, nil, fetcher, nil, nil, cfg)

	got := svc.enhanceContent(context.Background(), FeedItem{URL: "https://example.com/1", Content: "corto"})
	assert.Equal(t, fetcher.content, got)
	assert.Equal(t, []string{"https://example.com/1"}, fetcher.calls)
}

func TestEnhanceContent_SkipsFetchAboveThreshold(t *testing.T) {
	fetcher := &stubContentFetcher{content: "no debería usarse"}
	cfg := DefaultConfig()
	cfg.ContentThreshold = 5

	svc := NewService(nil, nil, fetcher, nil, nil, cfg)

	got := svc.enhanceContent(context.Background(), FeedItem{Content: "contenido del feed suficientemente largo"})
	assert.Equal(t, "contenido del feed suficientemente largo", got)
	assert.Empty(t, fetcher.calls)
}

func TestEnhanceContent_FallsBackOnError(t *testing.T) {
	fetcher := &stubContentFetcher{err: errors.New("timeout")}
	cfg := DefaultConfig()
	cfg.ContentThreshold = 100

	svc := NewService(nil, nil, fetcher, nil, nil, cfg)

	got := svc.enhanceContent(context.Background(), FeedItem{Content: "contenido del feed"})
	assert.Equal(t, "contenido del feed", got)
}

func TestEnhanceContent_KeepsLongerFeedContent(t *testing.T) {
	fetcher := &stubContentFetcher{content: "x"}
	cfg := DefaultConfig()
	cfg.ContentThreshold = 100

	svc := NewService(nil, nil, fetcher, nil, nil, cfg)

	got := svc.enhanceContent(context.Background(), FeedItem{Content: "contenido del feed"})
	assert.Equal(t, "contenido del feed", got)
}

func TestEnhanceContent_NilFetcher(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, DefaultConfig())

	got := svc.enhanceContent(context.Background(), FeedItem{Content: "texto"})
	assert.Equal(t, "texto", got)
}
