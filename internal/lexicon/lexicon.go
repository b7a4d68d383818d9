// Package lexicon provides the static language resources used by the
// correction and keyword features: a misspelling correction table, a
// gendered-noun table for neuter-article resolution, and a stopword set.
//
// Resources are embedded in the binary and parsed once. All lookups are
// case-folded at load time, the tables are never mutated afterwards, and
// every method is safe for concurrent use by multiple goroutines.
package lexicon

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/corrections.yaml
var correctionsYAML []byte

//go:embed data/stopwords_es.yaml
var stopwordsYAML []byte

// Lexicon holds the immutable resource tables.
type Lexicon struct {
	corrections   map[string]string
	genderedNouns map[string]string
	stopwords     map[string]struct{}
}

type correctionsFile struct {
	Corrections   map[string]string `yaml:"corrections"`
	GenderedNouns map[string]string `yaml:"gendered_nouns"`
}

type stopwordsFile struct {
	Language string   `yaml:"language"`
	Words    []string `yaml:"words"`
}

// Load parses the embedded resource files into a new Lexicon.
// Keys are lowercased; duplicate keys that differ only by case collapse
// into a single entry.
func Load() (*Lexicon, error) {
	var cf correctionsFile
	if err := yaml.Unmarshal(correctionsYAML, &cf); err != nil {
		return nil, fmt.Errorf("parse corrections: %w", err)
	}
	var sf stopwordsFile
	if err := yaml.Unmarshal(stopwordsYAML, &sf); err != nil {
		return nil, fmt.Errorf("parse stopwords: %w", err)
	}

	lex := &Lexicon{
		corrections:   make(map[string]string, len(cf.Corrections)),
		genderedNouns: make(map[string]string, len(cf.GenderedNouns)),
		stopwords:     make(map[string]struct{}, len(sf.Words)),
	}
	for k, v := range cf.Corrections {
		lex.corrections[strings.ToLower(k)] = v
	}
	for k, v := range cf.GenderedNouns {
		lex.genderedNouns[strings.ToLower(k)] = v
	}
	for _, w := range sf.Words {
		lex.stopwords[strings.ToLower(w)] = struct{}{}
	}
	return lex, nil
}

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
)

// Default returns the process-wide Lexicon, loading it on first use.
// The embedded resources are compile-time constants, so a parse failure
// here is a build defect and panics.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Load()
		if err != nil {
			panic(fmt.Sprintf("lexicon: embedded resources failed to parse: %v", err))
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

// Correction returns the replacement for a misspelled word form.
// The lookup key is lowercased by the caller's behalf.
func (l *Lexicon) Correction(word string) (string, bool) {
	v, ok := l.corrections[strings.ToLower(word)]
	return v, ok
}

// GenderedNoun returns the article-qualified phrase for a noun lemma,
// used to resolve the neuter article "lo".
func (l *Lexicon) GenderedNoun(lemma string) (string, bool) {
	v, ok := l.genderedNouns[strings.ToLower(lemma)]
	return v, ok
}

// IsStopword reports whether the word is excluded from frequency counts.
func (l *Lexicon) IsStopword(word string) bool {
	_, ok := l.stopwords[strings.ToLower(word)]
	return ok
}

// StopwordCount returns the size of the stopword set. A zero count means the
// resource is absent; frequency features degrade but do not fail.
func (l *Lexicon) StopwordCount() int {
	return len(l.stopwords)
}
