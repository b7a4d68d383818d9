// Package entity contains the domain model shared by all text-processing
// use cases: annotated documents, part-of-speech tags, sentence scores,
// and persisted analysis sessions.
package entity

import "fmt"

// PartOfSpeech is the closed tag set the core distinguishes. Annotation
// providers may emit finer tagsets (e.g. Universal Dependencies); they are
// collapsed into these four categories at the adapter boundary.
type PartOfSpeech string

const (
	POSNoun       PartOfSpeech = "NOUN"
	POSVerb       PartOfSpeech = "VERB"
	POSDeterminer PartOfSpeech = "DET"
	POSOther      PartOfSpeech = "OTHER"
)

// IsValid reports whether the tag is one of the four known categories.
func (p PartOfSpeech) IsValid() bool {
	switch p {
	case POSNoun, POSVerb, POSDeterminer, POSOther:
		return true
	}
	return false
}

// NormalizePOS maps an arbitrary provider tag onto the closed set.
// Unknown tags collapse to POSOther.
func NormalizePOS(tag string) PartOfSpeech {
	switch PartOfSpeech(tag) {
	case POSNoun:
		return POSNoun
	case POSVerb:
		return POSVerb
	case POSDeterminer:
		return POSDeterminer
	}
	return POSOther
}

// Token is a single annotated word. Index is the zero-based position within
// the owning sentence. Tokens are immutable once produced by an annotator.
type Token struct {
	Text  string
	Lemma string
	POS   PartOfSpeech
	Index int
}

// Sentence is an ordered sequence of tokens with the original sentence text.
// Index is the zero-based position within the document.
type Sentence struct {
	Tokens []Token
	Text   string
	Index  int
}

// NounCount returns the number of tokens tagged as nouns.
func (s Sentence) NounCount() int {
	n := 0
	for _, t := range s.Tokens {
		if t.POS == POSNoun {
			n++
		}
	}
	return n
}

// Document is an annotated text. It is owned exclusively by the pipeline
// invocation that created it and is never mutated after creation.
type Document struct {
	Sentences []Sentence
}

// Tokens returns all tokens of the document in reading order.
func (d *Document) Tokens() []Token {
	var out []Token
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}

// Validate checks the annotator contract: sentence and token indices are
// zero-based and strictly increasing, and every sentence carries text and at
// least one token. Violations wrap ErrMalformedAnnotation.
func (d *Document) Validate() error {
	for i, s := range d.Sentences {
		if s.Index != i {
			return fmt.Errorf("%w: sentence index %d at position %d", ErrMalformedAnnotation, s.Index, i)
		}
		if s.Text == "" {
			return fmt.Errorf("%w: sentence %d has empty text", ErrMalformedAnnotation, i)
		}
		if len(s.Tokens) == 0 {
			return fmt.Errorf("%w: sentence %d has no tokens", ErrMalformedAnnotation, i)
		}
		for j, t := range s.Tokens {
			if t.Index != j {
				return fmt.Errorf("%w: token index %d at position %d in sentence %d", ErrMalformedAnnotation, t.Index, j, i)
			}
		}
	}
	return nil
}

// ScoredSentence pairs a sentence index with its relevance score. It is
// ephemeral, produced and consumed within a single summarization call.
type ScoredSentence struct {
	SentenceIndex int
	Score         float64
}
