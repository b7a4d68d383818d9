package normalize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/lexicon"
	"claritext/internal/observability/logging"
)

// Result is the four-field normalization output. When Mode is
// annotate.ModeHeuristic only Original and Deduplicated are populated:
// lemmatization and the correction rules need annotation and are reported
// as unavailable through the mode marker, never silently approximated.
type Result struct {
	Original     string
	Lemmatized   string
	Deduplicated string
	Corrected    string
	Mode         annotate.Mode
}

// Service is the normalization facade. It composes the correction engine
// with the repetition-removal pass over raw whitespace-split words.
type Service struct {
	annotator annotate.Annotator
	corrector *Corrector
}

// NewService creates the facade over the given annotator and lexicon.
func NewService(annotator annotate.Annotator, lex *lexicon.Lexicon) *Service {
	return &Service{
		annotator: annotator,
		corrector: NewCorrector(lex),
	}
}

// Normalize produces the normalization result for text.
//
// Returns entity.ErrEmptyInput for empty or all-whitespace input, checked
// before any annotation or resource access. Annotator unavailability is a
// logged degradation, not an error: the call succeeds with Mode set to
// annotate.ModeHeuristic. Contract violations by the annotator are fatal
// and wrap entity.ErrMalformedAnnotation.
func (s *Service) Normalize(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyInput
	}

	res := &Result{
		Original:     text,
		Deduplicated: DedupWords(text),
		Mode:         annotate.ModeFull,
	}

	doc, err := s.annotator.Annotate(ctx, text)
	if err != nil {
		if errors.Is(err, annotate.ErrUnavailable) {
			logging.WithRequestID(ctx, slog.Default()).Warn(
				"annotator unavailable, falling back to repetition removal only",
				slog.Int("input_chars", len(text)))
			res.Mode = annotate.ModeHeuristic
			return res, nil
		}
		return nil, fmt.Errorf("normalize: annotate: %w", err)
	}

	tokens := doc.Tokens()
	lemmas := make([]string, len(tokens))
	for i, t := range tokens {
		lemmas[i] = t.Lemma
	}
	res.Lemmatized = strings.Join(lemmas, " ")
	res.Corrected = s.corrector.Correct(tokens)
	return res, nil
}
