package http

import (
	"net/http"

	"claritext/pkg/security/csp"
)

// SecurityHeaders returns middleware that sets the standard security
// response headers. The API serves JSON only, so the CSP is the strict
// no-content policy.
func SecurityHeaders() func(http.Handler) http.Handler {
	policy := csp.StrictPolicy()
	headerName := policy.HeaderName()
	headerValue := policy.Build()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(headerName, headerValue)
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")

			next.ServeHTTP(w, r)
		})
	}
}
