// Package keywords extracts the most frequent content words of a text,
// plus its dominant nouns and verbs when part-of-speech tags are available.
package keywords

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/lexicon"
	"claritext/internal/observability/logging"
)

// topN is the number of entries reported per category.
const topN = 5

// minWordRunes filters out short tokens that carry little content.
const minWordRunes = 2

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// Result holds the extracted keyword lists. Nouns and Verbs are empty in
// heuristic mode: they need part-of-speech tags, and the degraded path is
// surfaced through Mode rather than approximated.
type Result struct {
	TopWords []WordCount
	Nouns    []WordCount
	Verbs    []WordCount
	Mode     annotate.Mode
}

// Service extracts keywords from text. Frequency counts exclude stopwords;
// an absent stopword set degrades the filter but does not fail the call.
type Service struct {
	annotator annotate.Annotator
	fallback  *annotate.Heuristic
	lex       *lexicon.Lexicon
}

// NewService creates the keyword extraction service.
func NewService(annotator annotate.Annotator, lex *lexicon.Lexicon) *Service {
	return &Service{
		annotator: annotator,
		fallback:  annotate.NewHeuristic(),
		lex:       lex,
	}
}

// Extract returns the top frequent content words and, with full annotation,
// the top nouns and verbs. Returns entity.ErrEmptyInput for blank input.
func (s *Service) Extract(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyInput
	}

	mode := annotate.ModeFull
	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		if !errors.Is(err, annotate.ErrUnavailable) {
			return nil, fmt.Errorf("keywords: annotate: %w", err)
		}
		logging.WithRequestID(ctx, slog.Default()).Warn(
			"annotator unavailable, noun and verb keywords skipped")
		mode = annotate.ModeHeuristic
		doc, _ = s.fallback.Annotate(ctx, text)
	}

	freq := make(map[string]int)
	nounFreq := make(map[string]int)
	verbFreq := make(map[string]int)
	for _, tok := range doc.Tokens() {
		lower := strings.ToLower(tok.Text)
		if isAlnum(lower) && !s.lex.IsStopword(lower) && utf8.RuneCountInString(lower) > minWordRunes {
			freq[lower]++
		}
		if mode != annotate.ModeFull {
			continue
		}
		switch tok.POS {
		case entity.POSNoun:
			nounFreq[tok.Text]++
		case entity.POSVerb:
			verbFreq[tok.Text]++
		}
	}

	return &Result{
		TopWords: mostCommon(freq, topN),
		Nouns:    mostCommon(nounFreq, topN),
		Verbs:    mostCommon(verbFreq, topN),
		Mode:     mode,
	}, nil
}

// mostCommon returns the n highest counts, ties broken alphabetically so
// results are deterministic.
func mostCommon(freq map[string]int, n int) []WordCount {
	out := make([]WordCount, 0, len(freq))
	for w, c := range freq {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Word < out[b].Word
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
