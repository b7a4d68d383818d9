// Package text provides small utilities for text measurement shared by the
// scoring and keyword features.
package text

import (
	"strings"
	"unicode/utf8"
)

// CountRunes counts the number of Unicode characters in the given text.
// Sentence length penalties are defined over characters, not bytes, so
// multi-byte characters (accented Spanish letters, emoji) count as one.
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// CountLongWords counts whitespace-delimited words with more than min runes.
// The heuristic summarization path uses this as a crude stand-in for noun
// density when part-of-speech tags are unavailable.
func CountLongWords(text string, min int) int {
	n := 0
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) > min {
			n++
		}
	}
	return n
}
