// Package annotate defines the annotation capability consumed by the text
// processing use cases. Annotation (tokenization, part-of-speech tagging,
// lemmatization, sentence segmentation) is an external capability; this
// package holds the interface, the mode markers, and the built-in heuristic
// fallback used when the external annotator is unreachable.
package annotate

import (
	"context"
	"errors"

	"claritext/internal/domain/entity"
)

// ErrUnavailable signals that the annotation provider cannot serve the call.
// It is a recoverable condition: callers degrade to the heuristic fallback
// rather than failing, and surface which path executed in their results.
var ErrUnavailable = errors.New("annotator unavailable")

// Mode identifies which annotation path produced a result.
type Mode string

const (
	// ModeFull means a real annotator supplied lemmas and part-of-speech tags.
	ModeFull Mode = "full"
	// ModeHeuristic means the crude built-in fallback ran: sentences split on
	// periods, whitespace tokenization, no lemmas, no tags.
	ModeHeuristic Mode = "heuristic"
)

// Annotator turns raw text into an annotated document.
//
// Contract: sentences are non-overlapping, cover the input in order, and are
// individually non-empty; tokens are in reading order with zero-based stable
// indices; every token carries a lemma (the surface form when lemmatization
// is not meaningful) and a tag from the entity.PartOfSpeech set.
type Annotator interface {
	// Annotate returns the annotated document for text, ErrUnavailable when
	// the provider cannot serve the call, or a fatal error wrapping
	// entity.ErrMalformedAnnotation when the provider violated its contract.
	Annotate(ctx context.Context, text string) (*entity.Document, error)

	// Mode reports which annotation path this implementation provides.
	Mode() Mode
}
