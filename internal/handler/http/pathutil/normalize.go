// Package pathutil normalizes dynamic URL paths so metrics labels stay
// bounded.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the dynamic routes, most specific first. Patterns are
// pre-compiled at init.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/sessions/\d+$`), Template: "/sessions/:id"},
}

// NormalizePath converts paths carrying numeric IDs (e.g. /sessions/123)
// to template form (/sessions/:id) to prevent metrics label cardinality
// explosion. Static paths pass through unchanged; query parameters and
// trailing slashes are stripped first.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
