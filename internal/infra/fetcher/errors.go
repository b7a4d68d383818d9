// Package fetcher downloads article pages and extracts their readable text
// for the document digest pipeline.
package fetcher

import "errors"

var (
	// ErrInvalidURL indicates the URL format is invalid or uses an unsupported scheme.
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private IP address.
	// Blocking these prevents Server-Side Request Forgery.
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded the configured maximum.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeds the configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("content fetch timed out")

	// ErrExtractFailed indicates no readable text could be extracted from the page.
	ErrExtractFailed = errors.New("content extraction failed")
)
