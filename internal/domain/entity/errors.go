package entity

import "errors"

var (
	// ErrEmptyInput is returned when the input text is empty or all-whitespace.
	// It is checked before any tokenization or resource access.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrMalformedAnnotation is returned when an annotation provider violates
	// its contract (out-of-order indices, empty sentences). It is fatal to the
	// call and must not be silently tolerated.
	ErrMalformedAnnotation = errors.New("malformed annotation")

	// ErrInvalidSession is returned when an analysis session is missing
	// required fields.
	ErrInvalidSession = errors.New("invalid analysis session")
)
