package summarize_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/usecase/summarize"
)

type stubAnnotator struct {
	doc *entity.Document
	err error
}

func (s *stubAnnotator) Annotate(_ context.Context, _ string) (*entity.Document, error) {
	return s.doc, s.err
}

func (s *stubAnnotator) Mode() annotate.Mode { return annotate.ModeFull }

// sentence builds a sentence whose first nouns tokens are tagged as nouns.
func sentence(index, nouns int, text string) entity.Sentence {
	s := entity.Sentence{Text: text, Index: index}
	for i, w := range strings.Fields(text) {
		pos := entity.POSOther
		if i < nouns {
			pos = entity.POSNoun
		}
		s.Tokens = append(s.Tokens, entity.Token{Text: w, Lemma: w, POS: pos, Index: i})
	}
	return s
}

func docOf(sentences ...entity.Sentence) *entity.Document {
	return &entity.Document{Sentences: sentences}
}

func TestSummarizeEmptyInput(t *testing.T) {
	svc := summarize.NewService(&stubAnnotator{})

	_, err := svc.Summarize(context.Background(), "   ", 3)
	assert.ErrorIs(t, err, entity.ErrEmptyInput)
}

func TestSummarizeInvalidMaxSentences(t *testing.T) {
	svc := summarize.NewService(&stubAnnotator{})

	for _, n := range []int{0, -1} {
		_, err := svc.Summarize(context.Background(), "algo de texto", n)
		assert.ErrorIs(t, err, summarize.ErrInvalidMaxSentences, "n=%d", n)
	}
}

func TestSummarizeShortCircuit(t *testing.T) {
	// A document with fewer sentences than requested returns the input
	// text exactly, with no extraction attempted.
	input := "Primera frase. Segunda frase."
	doc := docOf(
		sentence(0, 1, "Primera frase."),
		sentence(1, 1, "Segunda frase."),
	)
	svc := summarize.NewService(&stubAnnotator{doc: doc})

	res, err := svc.Summarize(context.Background(), input, 3)
	require.NoError(t, err)

	assert.Equal(t, input, res.Summary)
	assert.Equal(t, 2, res.SentencesIn)
	assert.Equal(t, 2, res.SentencesOut)
	assert.Equal(t, annotate.ModeFull, res.Mode)
}

func TestSummarizeSelectionAndReorder(t *testing.T) {
	// Sentence 3 scores highest on noun density, sentence 0 second thanks
	// to the first-sentence bonus, sentence 1 third. With max 2 the output
	// must contain sentence 0 then sentence 3, in reading order.
	doc := docOf(
		sentence(0, 2, "gato casa cerca"),
		sentence(1, 2, "pan vino aqui"),
		sentence(2, 0, "y entonces nada"),
		sentence(3, 4, "sol mar cielo arena"),
		sentence(4, 0, "eso fue todo"),
	)
	svc := summarize.NewService(&stubAnnotator{doc: doc})

	res, err := svc.Summarize(context.Background(), "texto original con cinco frases", 2)
	require.NoError(t, err)

	assert.Equal(t, "gato casa cerca sol mar cielo arena", res.Summary)
	assert.Equal(t, []int{0, 3}, res.Selected)
	assert.Equal(t, 2, res.SentencesOut)
}

func TestSummarizeOrderPreserved(t *testing.T) {
	doc := docOf(
		sentence(0, 1, "uno dos tres"),
		sentence(1, 3, "lobo luna bosque"),
		sentence(2, 2, "rio piedra agua"),
		sentence(3, 0, "fin de todo"),
	)
	svc := summarize.NewService(&stubAnnotator{doc: doc})

	res, err := svc.Summarize(context.Background(), "texto", 3)
	require.NoError(t, err)

	assert.True(t, sort.IntsAreSorted(res.Selected), "selected indices must be strictly increasing: %v", res.Selected)
	assert.LessOrEqual(t, res.SentencesOut, 3)
}

func TestSummarizeTieBreakIsStable(t *testing.T) {
	// Identical sentences score identically; the earlier index wins.
	doc := docOf(
		sentence(0, 0, "aa bb"),
		sentence(1, 2, "sol mar"),
		sentence(2, 2, "sol mar"),
		sentence(3, 2, "sol mar"),
	)
	svc := summarize.NewService(&stubAnnotator{doc: doc})

	res, err := svc.Summarize(context.Background(), "texto", 2)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, res.Selected)
}

func TestSummarizeHeuristicFallback(t *testing.T) {
	svc := summarize.NewService(&stubAnnotator{err: annotate.ErrUnavailable})

	input := "El veloz murciélago. Come. Tres palabras largas aquí. Fin."
	res, err := svc.Summarize(context.Background(), input, 1)
	require.NoError(t, err)

	assert.Equal(t, annotate.ModeHeuristic, res.Mode)
	assert.Equal(t, "Tres palabras largas aquí", res.Summary)
	assert.Equal(t, 4, res.SentencesIn)
}

func TestSummarizeAnnotatorErrorIsFatal(t *testing.T) {
	boom := errors.New("proto decode failure")
	svc := summarize.NewService(&stubAnnotator{err: boom})

	_, err := svc.Summarize(context.Background(), "texto con frases", 1)
	assert.ErrorIs(t, err, boom)
}
