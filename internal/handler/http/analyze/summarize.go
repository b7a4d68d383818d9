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
	"claritext/internal/usecase/session"
	"claritext/internal/usecase/summarize"
)

const defaultMaxSentences = 3

// SummarizeHandler serves POST /summarize.
type SummarizeHandler struct {
	Svc      *summarize.Service
	Sessions *session.Service
	Logger   *slog.Logger
}

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req summarizeRequest
	if err := decodeBody(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.MaxSentences == 0 {
		req.MaxSentences = defaultMaxSentences
	}

	result, err := h.Svc.Summarize(ctx, req.Text, req.MaxSentences)
	if err != nil {
		respondAnalysisError(w, logger, "summarize", err)
		return
	}

	apihttp.RecordAnalysis("summarize", string(result.Mode), utf8.RuneCountInString(req.Text), time.Since(start))

	if h.Sessions != nil {
		h.Sessions.RecordAsync(&entity.AnalysisSession{
			Operation:  "summarize",
			Mode:       string(result.Mode),
			InputChars: utf8.RuneCountInString(req.Text),
			Result:     previewResult(result.Summary),
		})
	}

	logger.Info("summary served",
		slog.String("mode", string(result.Mode)),
		slog.Int("sentences_in", result.SentencesIn),
		slog.Int("sentences_out", result.SentencesOut),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, toSummarizeDTO(result))
}
