package entity

import "time"

// AnalysisSession records one invocation of a text-processing operation.
// Sessions are persisted for history and auditing; they carry the operation
// name, which annotation path executed, and the produced result.
type AnalysisSession struct {
	ID         int64
	Operation  string // "normalize", "summarize", "patterns", "keywords", "entities", "sentiment"
	Mode       string // "full" or "heuristic"
	InputChars int
	Result     string
	CreatedAt  time.Time
}

// Validate checks that the session carries the required fields.
func (s *AnalysisSession) Validate() error {
	if s.Operation == "" {
		return ErrInvalidSession
	}
	if s.InputChars < 0 {
		return ErrInvalidSession
	}
	return nil
}
