package summarize_test

import (
	"math"
	"testing"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/usecase/summarize"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreFullMode(t *testing.T) {
	// 2 nouns, 20 chars, not first: 2 - 20/200 = 1.9
	s := entity.Sentence{
		Tokens: []entity.Token{
			{Text: "el", Lemma: "el", POS: entity.POSDeterminer, Index: 0},
			{Text: "perro", Lemma: "perro", POS: entity.POSNoun, Index: 1},
			{Text: "ladra", Lemma: "ladrar", POS: entity.POSVerb, Index: 2},
			{Text: "fuerte", Lemma: "fuerte", POS: entity.POSNoun, Index: 3},
		},
		Text:  "el perro ladra fuert",
		Index: 2,
	}
	got := summarize.Score(s, annotate.ModeFull)
	if !almostEqual(got, 1.9) {
		t.Errorf("Score = %v, want 1.9", got)
	}
}

func TestScoreFirstSentenceBonus(t *testing.T) {
	s := entity.Sentence{Text: "corto", Index: 0}
	notFirst := s
	notFirst.Index = 3

	diff := summarize.Score(s, annotate.ModeFull) - summarize.Score(notFirst, annotate.ModeFull)
	if !almostEqual(diff, 1.0) {
		t.Errorf("first-sentence bonus = %v, want 1.0", diff)
	}
}

func TestScoreHeuristicMode(t *testing.T) {
	// content words longer than 2 runes: "perro", "ladra" -> 2; 14 chars
	s := entity.Sentence{Text: "el perro ladra", Index: 1}
	got := summarize.Score(s, annotate.ModeHeuristic)
	want := 2.0 - 14.0/200.0
	if !almostEqual(got, want) {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScoreLengthPenalty(t *testing.T) {
	short := entity.Sentence{Text: "breve", Index: 1}
	long := entity.Sentence{Text: pad(400), Index: 1}

	if summarize.Score(short, annotate.ModeFull) <= summarize.Score(long, annotate.ModeFull) {
		t.Error("longer sentence with equal noun count must score lower")
	}
}

func pad(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
