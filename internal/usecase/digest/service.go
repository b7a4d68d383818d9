// Package digest implements the scheduled feed digest: it pulls configured
// RSS/Atom feeds, optionally enhances short entries with the full article
// text, summarizes each document, and records the results as analysis
// sessions.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"claritext/internal/domain/entity"
	"claritext/internal/usecase/session"
	"claritext/internal/usecase/summarize"
)

const (
	// summaryParallelism bounds concurrent summarization. Annotation is the
	// expensive step, so it runs narrower than content fetching.
	summaryParallelism = 5
)

// FeedItem represents a single entry from an RSS/Atom feed.
type FeedItem struct {
	Title       string
	URL         string
	Content     string
	PublishedAt time.Time
}

// FeedFetcher fetches and parses an RSS/Atom feed from a URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// ContentFetcher fetches full article text from a URL. Implementations
// must prevent SSRF, enforce size limits, and bound each request.
// Callers fall back to the feed-provided content on error.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

// Summarizer reduces a document to at most maxSentences sentences.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxSentences int) (*summarize.Result, error)
}

// Config controls digest processing behavior.
type Config struct {
	// MaxConcurrent is the maximum number of feed items processed in parallel.
	MaxConcurrent int

	// ContentThreshold is the minimum feed content length in bytes before
	// the full article is fetched. Entries at or above the threshold are
	// summarized from the feed content directly.
	ContentThreshold int

	// SummarySentences is the number of sentences per digest summary.
	SummarySentences int
}

// DefaultConfig returns digest processing defaults.
func DefaultConfig() Config {
	return Config{
		MaxConcurrent:    10,
		ContentThreshold: 600,
		SummarySentences: 3,
	}
}

// Stats contains counters for one digest run.
type Stats struct {
	Feeds           int
	FeedErrors      int
	Items           int64
	Skipped         int64
	Summarized      int64
	SummarizeErrors int64
	Duration        time.Duration
}

// Service orchestrates one digest run across the configured feeds.
type Service struct {
	FeedURLs       []string
	FeedFetcher    FeedFetcher
	ContentFetcher ContentFetcher // nil disables full-article enhancement
	Summarizer     Summarizer
	Sessions       *session.Service // nil disables session recording
	config         Config
}

// NewService creates a digest service over the given feeds and collaborators.
func NewService(
	feedURLs []string,
	feedFetcher FeedFetcher,
	contentFetcher ContentFetcher,
	summarizer Summarizer,
	sessions *session.Service,
	config Config,
) *Service {
	return &Service{
		FeedURLs:       feedURLs,
		FeedFetcher:    feedFetcher,
		ContentFetcher: contentFetcher,
		Summarizer:     summarizer,
		Sessions:       sessions,
		config:         config,
	}
}

// Run executes one digest pass over all configured feeds. A failing feed is
// counted and logged but does not stop the others; context cancellation
// stops the run immediately. Returns run statistics.
func (s *Service) Run(ctx context.Context) (*Stats, error) {
	logger := slog.Default()
	start := time.Now()
	stats := &Stats{}

	for _, feedURL := range s.FeedURLs {
		if err := s.processFeed(ctx, feedURL, stats); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			stats.FeedErrors++
			logger.Error("feed digest failed",
				slog.String("url", feedURL),
				slog.Any("error", err))
			continue
		}
		stats.Feeds++
	}

	stats.Duration = time.Since(start)
	logger.Info("digest run finished",
		slog.Int("feeds", stats.Feeds),
		slog.Int("feed_errors", stats.FeedErrors),
		slog.Int64("items", stats.Items),
		slog.Int64("summarized", stats.Summarized),
		slog.Int64("summarize_errors", stats.SummarizeErrors),
		slog.Duration("duration", stats.Duration))

	return stats, nil
}

func (s *Service) processFeed(ctx context.Context, feedURL string, stats *Stats) error {
	items, err := s.FeedFetcher.Fetch(ctx, feedURL)
	if err != nil {
		return fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}

	return s.processItems(ctx, items, stats)
}

func (s *Service) processItems(ctx context.Context, items []FeedItem, stats *Stats) error {
	contentSem := make(chan struct{}, s.config.MaxConcurrent)
	summarySem := make(chan struct{}, summaryParallelism)
	eg, egCtx := errgroup.WithContext(ctx)

	for _, feedItem := range items {
		item := feedItem

		atomic.AddInt64(&stats.Items, 1)

		eg.Go(func() error {
			// Step 1: content enhancement (wider parallelism, I/O bound)
			contentSem <- struct{}{}
			content := s.enhanceContent(egCtx, item)
			<-contentSem

			if strings.TrimSpace(content) == "" {
				atomic.AddInt64(&stats.Skipped, 1)
				slog.Default().Debug("skipping feed item without content",
					slog.String("url", item.URL))
				return nil
			}

			// Step 2: summarization (narrower parallelism, annotation bound)
			summarySem <- struct{}{}
			defer func() { <-summarySem }()

			result, err := s.Summarizer.Summarize(egCtx, content, s.config.SummarySentences)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}

				atomic.AddInt64(&stats.SummarizeErrors, 1)
				slog.Default().Warn("summarization failed, skipping item",
					slog.String("url", item.URL),
					slog.String("title", item.Title),
					slog.Any("error", err))
				return nil
			}

			atomic.AddInt64(&stats.Summarized, 1)
			s.recordSession(item, content, result)
			return nil
		})
	}

	return eg.Wait()
}

// enhanceContent returns the text to summarize for one item. When the
// feed-provided content is shorter than the threshold and a ContentFetcher
// is configured, the full article is fetched; any fetch failure falls back
// to the feed content. Fetched content shorter than the feed content is
// discarded as a truncated extraction.
func (s *Service) enhanceContent(ctx context.Context, item FeedItem) string {
	logger := slog.Default()

	if s.ContentFetcher == nil {
		return item.Content
	}

	feedLength := len(item.Content)
	if feedLength >= s.config.ContentThreshold {
		logger.Debug("feed content sufficient, skipping fetch",
			slog.String("url", item.URL),
			slog.Int("feed_length", feedLength))
		return item.Content
	}

	fetchStart := time.Now()
	fullContent, err := s.ContentFetcher.FetchContent(ctx, item.URL)
	if err != nil {
		logger.Warn("article fetch failed, using feed content",
			slog.String("url", item.URL),
			slog.Any("error", err),
			slog.Duration("fetch_duration", time.Since(fetchStart)))
		return item.Content
	}

	if len(fullContent) > feedLength {
		return fullContent
	}

	logger.Debug("fetched content shorter than feed content, keeping feed content",
		slog.String("url", item.URL),
		slog.Int("feed_length", feedLength),
		slog.Int("fetched_length", len(fullContent)))
	return item.Content
}

// recordSession persists one digest result as an analysis session.
// Recording is best-effort and never blocks item processing.
func (s *Service) recordSession(item FeedItem, content string, result *summarize.Result) {
	if s.Sessions == nil {
		return
	}

	text := result.Summary
	if item.Title != "" {
		text = item.Title + "\n" + text
	}

	s.Sessions.RecordAsync(&entity.AnalysisSession{
		Operation:  "digest",
		Mode:       string(result.Mode),
		InputChars: utf8.RuneCountInString(content),
		Result:     text,
	})
}
