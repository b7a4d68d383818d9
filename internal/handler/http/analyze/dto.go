// Package analyze exposes the text analysis operations over HTTP. Each
// operation is a POST endpoint taking a JSON body with the input text and
// returning the operation's result; successful calls are recorded to the
// session history without blocking the response.
package analyze

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"claritext/internal/annotate"
	"claritext/internal/domain/entity"
	"claritext/internal/handler/http/respond"
	"claritext/internal/usecase/entities"
	"claritext/internal/usecase/keywords"
	"claritext/internal/usecase/normalize"
	"claritext/internal/usecase/patterns"
	"claritext/internal/usecase/sentiment"
	"claritext/internal/usecase/summarize"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type summarizeRequest struct {
	Text         string `json:"text"`
	MaxSentences int    `json:"max_sentences"`
}

// NormalizeDTO is the JSON shape of a normalization result.
type NormalizeDTO struct {
	Original     string `json:"original"`
	Lemmatized   string `json:"lemmatized,omitempty"`
	Deduplicated string `json:"deduplicated"`
	Corrected    string `json:"corrected,omitempty"`
	Mode         string `json:"mode"`
}

// SummarizeDTO is the JSON shape of a summarization result.
type SummarizeDTO struct {
	Summary      string `json:"summary"`
	Mode         string `json:"mode"`
	SentencesIn  int    `json:"sentences_in"`
	SentencesOut int    `json:"sentences_out"`
}

// PatternsDTO is the JSON shape of a pattern extraction result.
type PatternsDTO struct {
	Dates  []string `json:"dates"`
	Money  []string `json:"money"`
	Emails []string `json:"emails"`
}

// WordCountDTO pairs a word with its frequency.
type WordCountDTO struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// KeywordsDTO is the JSON shape of a keyword extraction result.
type KeywordsDTO struct {
	TopWords []WordCountDTO `json:"top_words"`
	Nouns    []WordCountDTO `json:"nouns"`
	Verbs    []WordCountDTO `json:"verbs"`
	Mode     string         `json:"mode"`
}

// EntitiesDTO is the JSON shape of a named-entity extraction result.
type EntitiesDTO struct {
	Persons       []string `json:"persons"`
	Places        []string `json:"places"`
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
	Quantities    []string `json:"quantities"`
}

// SentimentDTO is the JSON shape of a sentiment classification result.
type SentimentDTO struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	RawLabel   string  `json:"raw_label"`
}

func toNormalizeDTO(r *normalize.Result) NormalizeDTO {
	return NormalizeDTO{
		Original:     r.Original,
		Lemmatized:   r.Lemmatized,
		Deduplicated: r.Deduplicated,
		Corrected:    r.Corrected,
		Mode:         string(r.Mode),
	}
}

func toSummarizeDTO(r *summarize.Result) SummarizeDTO {
	return SummarizeDTO{
		Summary:      r.Summary,
		Mode:         string(r.Mode),
		SentencesIn:  r.SentencesIn,
		SentencesOut: r.SentencesOut,
	}
}

func toPatternsDTO(r *patterns.Result) PatternsDTO {
	return PatternsDTO{Dates: r.Dates, Money: r.Money, Emails: r.Emails}
}

func toWordCountDTOs(wcs []keywords.WordCount) []WordCountDTO {
	out := make([]WordCountDTO, 0, len(wcs))
	for _, wc := range wcs {
		out = append(out, WordCountDTO{Word: wc.Word, Count: wc.Count})
	}
	return out
}

func toKeywordsDTO(r *keywords.Result) KeywordsDTO {
	return KeywordsDTO{
		TopWords: toWordCountDTOs(r.TopWords),
		Nouns:    toWordCountDTOs(r.Nouns),
		Verbs:    toWordCountDTOs(r.Verbs),
		Mode:     string(r.Mode),
	}
}

func toEntitiesDTO(r *entities.Result) EntitiesDTO {
	return EntitiesDTO{
		Persons:       r.Persons,
		Places:        r.Places,
		Organizations: r.Organizations,
		Dates:         r.Dates,
		Quantities:    r.Quantities,
	}
}

func toSentimentDTO(r *sentiment.Result) SentimentDTO {
	return SentimentDTO{
		Sentiment:  r.Sentiment,
		Confidence: r.Confidence,
		RawLabel:   r.RawLabel,
	}
}

// decodeBody decodes a JSON request body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// respondAnalysisError maps operation errors to HTTP status codes. Blank
// input and parameter errors are the caller's fault; annotator
// unavailability on operations with no fallback and disabled providers
// report service unavailability.
func respondAnalysisError(w http.ResponseWriter, logger *slog.Logger, operation string, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyInput), errors.Is(err, summarize.ErrInvalidMaxSentences):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, annotate.ErrUnavailable), errors.Is(err, sentiment.ErrDisabled):
		logger.Warn("analysis dependency unavailable",
			slog.String("operation", operation),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusServiceUnavailable, err)
	default:
		logger.Error("analysis failed",
			slog.String("operation", operation),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// previewResult truncates a result string for session storage.
func previewResult(s string) string {
	const maxStored = 2000
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxStored {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxStored])
}
