package auth

import "strings"

// PublicEndpoints lists paths accessible without a JWT:
//   - health and readiness endpoints, for orchestration probes
//   - /metrics, for Prometheus scraping
//   - /auth/token, since a token cannot be required to obtain one
//   - the analysis operations, which are a public surface
var PublicEndpoints = []string{
	"/healthz",
	"/health",
	"/ready",
	"/metrics",
	"/auth/token",
	"/normalize",
	"/summarize",
	"/patterns",
	"/keywords",
	"/entities",
	"/sentiment",
}

// IsPublicEndpoint reports whether path may be accessed without
// authentication. Endpoints ending with '/' match by prefix; all others
// require an exact match, optionally with a trailing slash or query
// string, so /health never matches /healthcheck.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
		// Health endpoints expose subpaths like /health/annotator.
		if endpoint == "/health" && strings.HasPrefix(path, "/health/") {
			return true
		}
		if endpoint == "/ready" && strings.HasPrefix(path, "/ready/") {
			return true
		}
	}
	return false
}
