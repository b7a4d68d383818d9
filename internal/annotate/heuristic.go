package annotate

import (
	"context"
	"strings"

	"claritext/internal/domain/entity"
)

// Heuristic is the degraded annotation path: sentences are obtained by
// splitting on the period character and discarding empty fragments, tokens
// by whitespace splitting. Lemmas default to the surface form and every
// token is tagged POSOther, so features that need real lemmas or tags must
// branch on the mode instead of trusting these documents.
type Heuristic struct{}

// NewHeuristic creates the fallback annotator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Annotate splits text into a document without linguistic analysis.
// It never fails; empty input yields a document with no sentences.
func (h *Heuristic) Annotate(_ context.Context, text string) (*entity.Document, error) {
	doc := &entity.Document{}
	for _, frag := range strings.Split(text, ".") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		sent := entity.Sentence{
			Text:  frag,
			Index: len(doc.Sentences),
		}
		for i, w := range strings.Fields(frag) {
			sent.Tokens = append(sent.Tokens, entity.Token{
				Text:  w,
				Lemma: w,
				POS:   entity.POSOther,
				Index: i,
			})
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	return doc, nil
}

// Mode reports ModeHeuristic.
func (h *Heuristic) Mode() Mode {
	return ModeHeuristic
}
