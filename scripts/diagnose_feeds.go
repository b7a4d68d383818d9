// Standalone diagnostics for the digest feed list. Probes every URL in
// DIGEST_FEEDS and reports reachability, feed type, and item counts.
//
// Usage:
//
//	DIGEST_FEEDS="https://example.com/rss,..." go run scripts/diagnose_feeds.go [-json]
package main

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// FeedDiagnostic is the probe result for a single feed URL.
type FeedDiagnostic struct {
	URL           string `json:"url"`
	Status        string `json:"status"` // "OK", "HTTP_ERROR", "PARSE_ERROR", "EMPTY", "TIMEOUT"
	HTTPCode      int    `json:"http_code"`
	ItemCount     int    `json:"item_count"`
	FeedType      string `json:"feed_type"` // "RSS", "ATOM", "UNKNOWN"
	ErrorMessage  string `json:"error_message,omitempty"`
	ResponseTime  int64  `json:"response_time_ms"`
	ContentLength int64  `json:"content_length"`
}

type rssDocument struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

type atomDocument struct {
	Entries []struct {
		Title string `xml:"title"`
	} `xml:"entry"`
}

func main() {
	jsonOutput := flag.Bool("json", false, "emit results as JSON")
	flag.Parse()

	feeds := loadFeeds()
	if len(feeds) == 0 {
		fmt.Fprintln(os.Stderr, "DIGEST_FEEDS is empty, nothing to diagnose")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 15 * time.Second}

	results := make([]FeedDiagnostic, 0, len(feeds))
	for _, url := range feeds {
		results = append(results, diagnoseFeed(client, url))
	}

	if *jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(results)
		return
	}

	printSummary(results)
}

func loadFeeds() []string {
	raw := os.Getenv("DIGEST_FEEDS")
	var feeds []string
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			feeds = append(feeds, u)
		}
	}
	return feeds
}

func diagnoseFeed(client *http.Client, url string) FeedDiagnostic {
	diag := FeedDiagnostic{URL: url, FeedType: "UNKNOWN"}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	req.Header.Set("User-Agent", "claritext-feed-diagnostics/1.0")

	start := time.Now()
	resp, err := client.Do(req)
	diag.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		if ctx.Err() != nil {
			diag.Status = "TIMEOUT"
		} else {
			diag.Status = "HTTP_ERROR"
		}
		diag.ErrorMessage = err.Error()
		return diag
	}
	defer func() { _ = resp.Body.Close() }()

	diag.HTTPCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return diag
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	diag.ContentLength = int64(len(body))

	diag.FeedType, diag.ItemCount, err = parseFeed(body)
	if err != nil {
		diag.Status = "PARSE_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	if diag.ItemCount == 0 {
		diag.Status = "EMPTY"
		return diag
	}

	diag.Status = "OK"
	return diag
}

func parseFeed(body []byte) (feedType string, itemCount int, err error) {
	var rss rssDocument
	if err := xml.Unmarshal(body, &rss); err == nil && len(rss.Channel.Items) > 0 {
		return "RSS", len(rss.Channel.Items), nil
	}

	var atom atomDocument
	if err := xml.Unmarshal(body, &atom); err == nil && len(atom.Entries) > 0 {
		return "ATOM", len(atom.Entries), nil
	}

	if err := xml.Unmarshal(body, &struct{}{}); err != nil {
		return "UNKNOWN", 0, fmt.Errorf("not valid XML: %w", err)
	}
	return "UNKNOWN", 0, nil
}

func printSummary(results []FeedDiagnostic) {
	ok := 0
	for _, r := range results {
		marker := "✗"
		if r.Status == "OK" {
			marker = "✓"
			ok++
		}
		fmt.Printf("%s %-10s %-5s items=%-4d %4dms  %s\n",
			marker, r.Status, r.FeedType, r.ItemCount, r.ResponseTime, r.URL)
		if r.ErrorMessage != "" {
			fmt.Printf("    %s\n", r.ErrorMessage)
		}
	}
	fmt.Printf("\n%d/%d feeds healthy\n", ok, len(results))
}
