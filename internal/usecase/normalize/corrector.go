// Package normalize implements text normalization: rule-based token
// correction with local context and adjacent-repetition removal.
package normalize

import (
	"strings"

	"claritext/internal/domain/entity"
	"claritext/internal/lexicon"
)

// exhortative is the closed set of first/second-person present-tense forms
// of ir/querer that mark exhortative usage, turning a following "haber"
// into the homophone "a ver".
var exhortative = map[string]struct{}{
	"vamos":  {},
	"voy":    {},
	"van":    {},
	"vas":    {},
	"quiera": {},
}

// Corrector rewrites an annotated token stream into corrected text using the
// lexicon tables and local context. It holds no per-call state; a Corrector
// is safe for concurrent use.
//
// Rules are tried in a fixed order per token and the first match wins:
//
//  1. adjacent-duplicate suppression (case-insensitive, source positions)
//  2. exact correction-table lookup (replacements are never re-corrected)
//  3. neuter-article resolution for the determiner "lo"
//  4. contextual haber → "a ver" after an exhortative verb form
//  5. emit the surface text unchanged
//
// Suppression compares source surfaces, so the first of two identical
// misspellings has no predecessor to match, is corrected by the table, and
// the repeat is dropped: "haiga haiga" emits "haya" once.
type Corrector struct {
	lex *lexicon.Lexicon
}

// NewCorrector creates a Corrector over the given lexicon.
func NewCorrector(lex *lexicon.Lexicon) *Corrector {
	return &Corrector{lex: lex}
}

// Correct produces a single corrected string from tokens. Lookups are done
// on lowercased forms; emitted text preserves the original casing unless a
// rule replaces it. Tokens are never reordered, only substituted or dropped.
//
// When "lo" resolves against the gendered-noun table, the emitted phrase
// already contains the noun, so the following noun token is consumed rather
// than emitted a second time.
func (c *Corrector) Correct(tokens []entity.Token) string {
	emitted := make([]string, 0, len(tokens))
	skipNext := false

	for i, tok := range tokens {
		if skipNext {
			skipNext = false
			continue
		}
		lower := strings.ToLower(tok.Text)

		if i > 0 && lower == strings.ToLower(tokens[i-1].Text) {
			continue
		}

		if replacement, ok := c.lex.Correction(lower); ok {
			emitted = append(emitted, replacement)
			continue
		}

		if lower == "lo" && tok.POS == entity.POSDeterminer {
			if i+1 < len(tokens) {
				if phrase, ok := c.lex.GenderedNoun(strings.ToLower(tokens[i+1].Lemma)); ok {
					emitted = append(emitted, phrase)
					skipNext = true
					continue
				}
			}
			emitted = append(emitted, "el")
			continue
		}

		if lower == "haber" && i > 0 {
			if _, ok := exhortative[strings.ToLower(tokens[i-1].Text)]; ok {
				emitted = append(emitted, "a ver")
				continue
			}
		}

		emitted = append(emitted, tok.Text)
	}

	return strings.Join(emitted, " ")
}

// DedupWords removes immediately repeated words from raw text, comparing
// whitespace-split words case-insensitively at consecutive positions. This
// is the only correction available when no annotator is present.
func DedupWords(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 && strings.EqualFold(w, words[i-1]) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
