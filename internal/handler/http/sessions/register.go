package sessions

import (
	"log/slog"
	"net/http"

	"claritext/internal/handler/http/auth"
	"claritext/internal/usecase/session"
)

// Register registers the session history endpoints with the given mux.
// Both routes require admin authentication.
func Register(mux *http.ServeMux, svc *session.Service, logger *slog.Logger) {
	mux.Handle("GET /sessions", auth.Authz(ListHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET /sessions/stats", auth.Authz(StatsHandler{Svc: svc, Logger: logger}))
}
