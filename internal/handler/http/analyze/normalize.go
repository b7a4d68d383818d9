package analyze

import (
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"claritext/internal/domain/entity"
	apihttp "claritext/internal/handler/http"
	"claritext/internal/handler/http/respond"
	"claritext/internal/observability/logging"
	"claritext/internal/usecase/normalize"
	"claritext/internal/usecase/session"
)

// NormalizeHandler serves POST /normalize.
type NormalizeHandler struct {
	Svc      *normalize.Service
	Sessions *session.Service
	Logger   *slog.Logger
}

func (h NormalizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Normalize(ctx, req.Text)
	if err != nil {
		respondAnalysisError(w, logger, "normalize", err)
		return
	}

	apihttp.RecordAnalysis("normalize", string(result.Mode), utf8.RuneCountInString(req.Text), time.Since(start))

	if h.Sessions != nil {
		stored := result.Corrected
		if stored == "" { // heuristic mode has no correction output
			stored = result.Deduplicated
		}
		h.Sessions.RecordAsync(&entity.AnalysisSession{
			Operation:  "normalize",
			Mode:       string(result.Mode),
			InputChars: utf8.RuneCountInString(req.Text),
			Result:     previewResult(stored),
		})
	}

	logger.Info("normalization served",
		slog.String("mode", string(result.Mode)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, toNormalizeDTO(result))
}
