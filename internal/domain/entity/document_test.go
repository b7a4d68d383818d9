package entity_test

import (
	"errors"
	"testing"

	"claritext/internal/domain/entity"
)

func tok(text, lemma string, pos entity.PartOfSpeech, idx int) entity.Token {
	return entity.Token{Text: text, Lemma: lemma, POS: pos, Index: idx}
}

func TestNormalizePOS(t *testing.T) {
	tests := []struct {
		tag  string
		want entity.PartOfSpeech
	}{
		{"NOUN", entity.POSNoun},
		{"VERB", entity.POSVerb},
		{"DET", entity.POSDeterminer},
		{"ADJ", entity.POSOther},
		{"PROPN", entity.POSOther},
		{"", entity.POSOther},
	}
	for _, tt := range tests {
		if got := entity.NormalizePOS(tt.tag); got != tt.want {
			t.Errorf("NormalizePOS(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestSentenceNounCount(t *testing.T) {
	s := entity.Sentence{
		Tokens: []entity.Token{
			tok("el", "el", entity.POSDeterminer, 0),
			tok("perro", "perro", entity.POSNoun, 1),
			tok("come", "comer", entity.POSVerb, 2),
			tok("croquetas", "croqueta", entity.POSNoun, 3),
		},
		Text:  "el perro come croquetas",
		Index: 0,
	}
	if got := s.NounCount(); got != 2 {
		t.Errorf("NounCount() = %d, want 2", got)
	}
}

func TestDocumentValidate(t *testing.T) {
	valid := entity.Document{Sentences: []entity.Sentence{
		{Tokens: []entity.Token{tok("hola", "hola", entity.POSOther, 0)}, Text: "hola", Index: 0},
		{Tokens: []entity.Token{tok("adiós", "adiós", entity.POSOther, 0)}, Text: "adiós", Index: 1},
	}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid document = %v", err)
	}

	tests := []struct {
		name string
		doc  entity.Document
	}{
		{
			name: "sentence index not zero-based",
			doc: entity.Document{Sentences: []entity.Sentence{
				{Tokens: []entity.Token{tok("a", "a", entity.POSOther, 0)}, Text: "a", Index: 1},
			}},
		},
		{
			name: "sentence with empty text",
			doc: entity.Document{Sentences: []entity.Sentence{
				{Tokens: []entity.Token{tok("a", "a", entity.POSOther, 0)}, Text: "", Index: 0},
			}},
		},
		{
			name: "sentence with no tokens",
			doc: entity.Document{Sentences: []entity.Sentence{
				{Tokens: nil, Text: "a", Index: 0},
			}},
		},
		{
			name: "token index out of order",
			doc: entity.Document{Sentences: []entity.Sentence{
				{Tokens: []entity.Token{tok("a", "a", entity.POSOther, 1)}, Text: "a", Index: 0},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if !errors.Is(err, entity.ErrMalformedAnnotation) {
				t.Errorf("Validate() = %v, want ErrMalformedAnnotation", err)
			}
		})
	}
}

func TestDocumentTokens(t *testing.T) {
	doc := entity.Document{Sentences: []entity.Sentence{
		{Tokens: []entity.Token{tok("uno", "uno", entity.POSOther, 0), tok("dos", "dos", entity.POSOther, 1)}, Text: "uno dos", Index: 0},
		{Tokens: []entity.Token{tok("tres", "tres", entity.POSOther, 0)}, Text: "tres", Index: 1},
	}}
	got := doc.Tokens()
	if len(got) != 3 {
		t.Fatalf("Tokens() returned %d tokens, want 3", len(got))
	}
	if got[2].Text != "tres" {
		t.Errorf("Tokens()[2].Text = %q, want %q", got[2].Text, "tres")
	}
}

func TestAnalysisSessionValidate(t *testing.T) {
	s := &entity.AnalysisSession{Operation: "normalize", InputChars: 10}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	bad := &entity.AnalysisSession{InputChars: 10}
	if !errors.Is(bad.Validate(), entity.ErrInvalidSession) {
		t.Error("Validate() without operation should return ErrInvalidSession")
	}
}
