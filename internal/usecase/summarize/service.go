package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/observability/logging"
)

// ErrInvalidMaxSentences is returned when the requested sentence count is
// less than one.
var ErrInvalidMaxSentences = errors.New("max sentences must be at least 1")

// Result carries the summary, the annotation path that produced it, and the
// selected sentence indices in output order.
type Result struct {
	Summary      string
	Mode         annotate.Mode
	SentencesIn  int
	SentencesOut int
	Selected     []int
}

// Service reduces a document to at most N sentences, preserving original
// order and favoring sentences dense in nouns, short, or positioned first.
type Service struct {
	annotator annotate.Annotator
	fallback  *annotate.Heuristic
}

// NewService creates a summarizer over the given annotator. When the
// annotator is unavailable the built-in heuristic segmentation runs instead.
func NewService(annotator annotate.Annotator) *Service {
	return &Service{
		annotator: annotator,
		fallback:  annotate.NewHeuristic(),
	}
}

// Summarize selects the top maxSentences sentences of text by score and
// joins them in ascending original order.
//
// If the document has maxSentences or fewer sentences the full original
// text is returned unmodified; this is a defined short-circuit, not an
// approximation. Returns entity.ErrEmptyInput for blank input and
// ErrInvalidMaxSentences when maxSentences < 1, both before any annotation.
func (s *Service) Summarize(ctx context.Context, text string, maxSentences int) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyInput
	}
	if maxSentences < 1 {
		return nil, ErrInvalidMaxSentences
	}

	mode := annotate.ModeFull
	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		if !errors.Is(err, annotate.ErrUnavailable) {
			return nil, fmt.Errorf("summarize: annotate: %w", err)
		}
		logging.WithRequestID(ctx, slog.Default()).Warn(
			"annotator unavailable, using heuristic sentence segmentation",
			slog.Int("input_chars", len(text)))
		mode = annotate.ModeHeuristic
		doc, _ = s.fallback.Annotate(ctx, text)
	}

	total := len(doc.Sentences)
	if total <= maxSentences {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return &Result{
			Summary:      text,
			Mode:         mode,
			SentencesIn:  total,
			SentencesOut: total,
			Selected:     indices,
		}, nil
	}

	scored := make([]entity.ScoredSentence, total)
	for i, sent := range doc.Sentences {
		scored[i] = entity.ScoredSentence{SentenceIndex: i, Score: Score(sent, mode)}
	}

	// Stable sort keeps ascending-index order for equal scores, giving a
	// deterministic tie-break.
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	top := scored[:maxSentences]
	sort.Slice(top, func(a, b int) bool {
		return top[a].SentenceIndex < top[b].SentenceIndex
	})

	parts := make([]string, len(top))
	indices := make([]int, len(top))
	for i, sc := range top {
		parts[i] = strings.TrimSpace(doc.Sentences[sc.SentenceIndex].Text)
		indices[i] = sc.SentenceIndex
	}

	return &Result{
		Summary:      strings.Join(parts, " "),
		Mode:         mode,
		SentencesIn:  total,
		SentencesOut: len(top),
		Selected:     indices,
	}, nil
}
