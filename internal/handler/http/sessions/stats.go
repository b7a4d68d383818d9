package sessions

import (
	"log/slog"
	"net/http"

	"claritext/internal/handler/http/respond"
	"claritext/internal/observability/logging"
	"claritext/internal/usecase/session"
)

// StatsHandler serves GET /sessions/stats: session counts per operation.
type StatsHandler struct {
	Svc    *session.Service
	Logger *slog.Logger
}

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	counts, err := h.Svc.Stats(ctx)
	if err != nil {
		logger.Error("failed to load session stats", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, counts)
}
