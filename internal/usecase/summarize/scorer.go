// Package summarize implements extractive summarization: sentences are
// scored for relevance and the top N are re-emitted in reading order.
package summarize

import (
	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/utils/text"
)

const (
	// lengthPenaltyDivisor scales the character-length penalty so long
	// run-on sentences cannot dominate purely by containing more nouns.
	lengthPenaltyDivisor = 200.0

	// firstSentenceBonus encodes the heuristic that introductory sentences
	// are disproportionately informative.
	firstSentenceBonus = 1.0

	// minContentWordRunes is the length threshold above which a word counts
	// as content in the heuristic path's crude noun-density approximation.
	minContentWordRunes = 2
)

// Score assigns the relevance score for one sentence:
//
//	score = nouns - chars/200 + (1 if first sentence)
//
// In heuristic mode no part-of-speech tags exist, so noun density is
// approximated by counting words longer than two characters. That path is
// deliberately cruder and is surfaced via the result's mode marker.
func Score(s entity.Sentence, mode annotate.Mode) float64 {
	var content int
	if mode == annotate.ModeFull {
		content = s.NounCount()
	} else {
		content = text.CountLongWords(s.Text, minContentWordRunes)
	}

	score := float64(content) - float64(text.CountRunes(s.Text))/lengthPenaltyDivisor
	if s.Index == 0 {
		score += firstSentenceBonus
	}
	return score
}
