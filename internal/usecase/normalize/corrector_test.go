package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritext/internal/domain/entity"
	"claritext/internal/lexicon"
	"claritext/internal/usecase/normalize"
)

func toks(words ...entity.Token) []entity.Token {
	for i := range words {
		words[i].Index = i
	}
	return words
}

func word(text string) entity.Token {
	return entity.Token{Text: text, Lemma: text, POS: entity.POSOther}
}

func newCorrector(t *testing.T) *normalize.Corrector {
	t.Helper()
	lex, err := lexicon.Load()
	require.NoError(t, err)
	return normalize.NewCorrector(lex)
}

func TestCorrectorExactCorrection(t *testing.T) {
	c := newCorrector(t)

	got := c.Correct(toks(word("no"), word("haiga"), word("problema")))
	assert.Equal(t, "no haya problema", got)
}

func TestCorrectorRulePrecedence(t *testing.T) {
	// Two identical misspellings: table lookup fires on the first
	// occurrence, duplicate suppression on the second. The correction must
	// appear exactly once.
	c := newCorrector(t)

	got := c.Correct(toks(word("haiga"), word("haiga")))
	assert.Equal(t, "haya", got)
}

func TestCorrectorSuppressedRepeatSkipsOtherRules(t *testing.T) {
	c := newCorrector(t)

	// A suppressed repeat is dropped outright, not re-corrected or
	// re-resolved.
	got := c.Correct(toks(word("haiga"), word("haiga"), word("pan")))
	assert.Equal(t, "haya pan", got)

	got = c.Correct(toks(
		entity.Token{Text: "lo", Lemma: "lo", POS: entity.POSDeterminer},
		entity.Token{Text: "lo", Lemma: "lo", POS: entity.POSDeterminer},
		entity.Token{Text: "problema", Lemma: "problema", POS: entity.POSNoun},
	))
	assert.Equal(t, "el problema", got)
}

func TestCorrectorNeuterArticle(t *testing.T) {
	c := newCorrector(t)

	tests := []struct {
		name   string
		tokens []entity.Token
		want   string
	}{
		{
			name: "gendered noun follows: phrase consumes the noun",
			tokens: toks(
				entity.Token{Text: "lo", Lemma: "lo", POS: entity.POSDeterminer},
				entity.Token{Text: "niño", Lemma: "niño", POS: entity.POSNoun},
			),
			want: "el niño",
		},
		{
			name: "unknown noun follows: default article",
			tokens: toks(
				entity.Token{Text: "lo", Lemma: "lo", POS: entity.POSDeterminer},
				entity.Token{Text: "problema", Lemma: "problema", POS: entity.POSNoun},
			),
			want: "el problema",
		},
		{
			name: "lo at end of input: default article",
			tokens: toks(
				entity.Token{Text: "lo", Lemma: "lo", POS: entity.POSDeterminer},
			),
			want: "el",
		},
		{
			name: "lo as pronoun is untouched",
			tokens: toks(
				entity.Token{Text: "lo", Lemma: "lo", POS: entity.POSOther},
				entity.Token{Text: "vi", Lemma: "ver", POS: entity.POSVerb},
			),
			want: "lo vi",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Correct(tt.tokens))
		})
	}
}

func TestCorrectorHaberHomophone(t *testing.T) {
	c := newCorrector(t)

	// "vamos haber si funciona" -> "vamos a ver si funciona"
	got := c.Correct(toks(word("vamos"), word("haber"), word("si"), word("funciona")))
	assert.Equal(t, "vamos a ver si funciona", got)

	// without the exhortative context the literal token is kept
	got = c.Correct(toks(word("debe"), word("haber"), word("pan")))
	assert.Equal(t, "debe haber pan", got)

	// preceding-token comparison is case-insensitive
	got = c.Correct(toks(word("Vamos"), word("haber")))
	assert.Equal(t, "Vamos a ver", got)
}

func TestCorrectorDuplicateSuppression(t *testing.T) {
	c := newCorrector(t)

	got := c.Correct(toks(word("esto"), word("esto"), word("Es"), word("es"), word("raro")))
	assert.Equal(t, "esto Es raro", got)
}

func TestCorrectorPreservesCasing(t *testing.T) {
	c := newCorrector(t)

	got := c.Correct(toks(word("Madrid"), word("ES"), word("grande")))
	assert.Equal(t, "Madrid ES grande", got)
}

func TestCorrectorDeterminism(t *testing.T) {
	c := newCorrector(t)
	in := toks(word("haiga"), word("haiga"), word("vamos"), word("haber"))

	first := c.Correct(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Correct(in))
	}
}

func TestCorrectorEmptyInput(t *testing.T) {
	c := newCorrector(t)
	assert.Equal(t, "", c.Correct(nil))
}

func TestDedupWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "adjacent repeats dropped", input: "hola hola mundo", want: "hola mundo"},
		{name: "case-insensitive comparison", input: "Hola hola mundo", want: "Hola mundo"},
		{name: "non-adjacent repeats kept", input: "hola mundo hola", want: "hola mundo hola"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.DedupWords(tt.input))
		})
	}
}

func TestDedupWordsIdempotent(t *testing.T) {
	once := normalize.DedupWords("ya ya te te lo dije dije")
	twice := normalize.DedupWords(once)
	assert.Equal(t, once, twice)
}
