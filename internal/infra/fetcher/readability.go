package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"claritext/internal/resilience/circuitbreaker"
)

const userAgent = "ClaritextBot/1.0"

// Article is the readable content extracted from a page.
type Article struct {
	Title string
	Text  string
}

// ReadabilityFetcher downloads article pages and extracts their readable
// text using the Mozilla Readability algorithm, falling back to paragraph
// extraction when Readability finds nothing.
//
// Security: SSRF prevention via URL and redirect validation, response size
// limiting, TLS 1.2+, and per-request timeouts. Circuit breaker protection
// against repeatedly failing origins.
//
// Thread safety: ReadabilityFetcher is safe for concurrent use.
type ReadabilityFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         ArticleFetchConfig
}

// NewReadabilityFetcher creates a new ReadabilityFetcher with the given configuration.
func NewReadabilityFetcher(config ArticleFetchConfig) *ReadabilityFetcher {
	fetcher := &ReadabilityFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.ArticleFetchConfig()),
		config:         config,
	}

	fetcher.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= fetcher.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			// Every redirect target gets the same SSRF check as the original URL.
			if err := validateURL(req.URL.String(), fetcher.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return fetcher
}

// FetchArticle fetches and extracts readable content from the given URL.
//
// Errors:
//   - ErrInvalidURL: URL format is invalid or uses an unsupported scheme
//   - ErrPrivateIP: URL resolves to a private IP address
//   - ErrTooManyRedirects: redirect chain exceeds the configured maximum
//   - ErrBodyTooLarge: response body exceeds the size limit
//   - ErrTimeout: request timed out
//   - ErrExtractFailed: no readable content found
//   - gobreaker.ErrOpenState: circuit breaker is open
func (f *ReadabilityFetcher) FetchArticle(ctx context.Context, urlStr string) (*Article, error) {
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		return nil, err
	}

	result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, urlStr)
	})
	if err != nil {
		return nil, err
	}

	return result.(*Article), nil
}

// FetchContent fetches a page and returns its readable text only. It
// satisfies the digest worker's content fetcher contract.
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, urlStr string) (string, error) {
	article, err := f.FetchArticle(ctx, urlStr)
	if err != nil {
		return "", err
	}
	return article.Text, nil
}

// doFetch performs the actual HTTP request and content extraction.
func (f *ReadabilityFetcher) doFetch(ctx context.Context, urlStr string) (*Article, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.config.Timeout)
		}
		// Surface redirect validation errors without the url.Error wrapper.
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return nil, urlErr.Err
		}
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, f.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return nil, fmt.Errorf("%w: response size %d bytes exceeds limit %d bytes",
			ErrBodyTooLarge, len(htmlBytes), f.config.MaxBodySize)
	}

	// Prefer the post-redirect URL so relative references resolve correctly.
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		parsedURL = nil
	}
	if resp.Request != nil && resp.Request.URL != nil {
		parsedURL = resp.Request.URL
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return &Article{
			Title: article.Title,
			Text:  article.TextContent,
		}, nil
	}

	// Readability gives up on some page structures; paragraph extraction
	// recovers most of those.
	slog.Debug("readability extraction empty, trying paragraph fallback",
		slog.String("url", urlStr))
	return extractParagraphs(htmlBytes)
}

// extractParagraphs is the fallback extractor: the page title plus the text
// of every <p> element, in document order.
func extractParagraphs(htmlBytes []byte) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractFailed, err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("%w: no readable content found", ErrExtractFailed)
	}

	return &Article{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  strings.Join(paragraphs, "\n\n"),
	}, nil
}
