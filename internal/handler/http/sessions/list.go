// Package sessions serves the recorded analysis history. Both endpoints
// are admin-only; registration wraps them in the authorization middleware.
package sessions

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"claritext/internal/domain/entity"
	"claritext/internal/handler/http/respond"
	"claritext/internal/observability/logging"
	"claritext/internal/usecase/session"
)

// DTO is the JSON shape of one recorded analysis session.
type DTO struct {
	ID         int64     `json:"id"`
	Operation  string    `json:"operation"`
	Mode       string    `json:"mode"`
	InputChars int       `json:"input_chars"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(s *entity.AnalysisSession) DTO {
	return DTO{
		ID:         s.ID,
		Operation:  s.Operation,
		Mode:       s.Mode,
		InputChars: s.InputChars,
		Result:     s.Result,
		CreatedAt:  s.CreatedAt,
	}
}

// ListHandler serves GET /sessions. The limit query parameter bounds the
// result; the service clamps out-of-range values.
type ListHandler struct {
	Svc    *session.Service
	Logger *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		limit = parsed
	}

	sessions, err := h.Svc.ListRecent(ctx, limit)
	if err != nil {
		logger.Error("failed to list sessions", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, toDTO(s))
	}

	respond.JSON(w, http.StatusOK, dtos)
}
