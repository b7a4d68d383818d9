// Package patterns extracts dates, money amounts, and email addresses from
// raw text using fixed regular expressions. No linguistic annotation is
// involved; the patterns are compiled once at package init.
package patterns

import (
	"context"
	"regexp"
	"strings"

	"claritext/internal/domain/entity"
)

var (
	dateRE  = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`)
	moneyRE = regexp.MustCompile(`\b(?:€?\s?\d{1,3}(?:[\.,]\d{3})*(?:[\.,]\d+)?\s?(?:€|euros|USD|\$)|\$\d+(?:\.\d+)?\b)`)
	emailRE = regexp.MustCompile(`\b[\w\.-]+@[\w\.-]+\.\w{2,4}\b`)
)

// Result lists every match of each pattern, in input order. Slices are
// empty, never nil, when nothing matched.
type Result struct {
	Dates  []string
	Money  []string
	Emails []string
}

// Service applies the fixed pattern set. It is stateless and safe for
// concurrent use.
type Service struct{}

// NewService creates the pattern extraction service.
func NewService() *Service {
	return &Service{}
}

// Extract returns all date, money, and email matches in text.
// Returns entity.ErrEmptyInput for empty or all-whitespace input.
func (s *Service) Extract(_ context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyInput
	}
	return &Result{
		Dates:  matchAll(dateRE, text),
		Money:  matchAll(moneyRE, text),
		Emails: matchAll(emailRE, text),
	}, nil
}

func matchAll(re *regexp.Regexp, text string) []string {
	m := re.FindAllString(text, -1)
	if m == nil {
		return []string{}
	}
	return m
}
