package analyze

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"claritext/internal/domain/entity"
	apihttp "claritext/internal/handler/http"
	"claritext/internal/handler/http/respond"
	"claritext/internal/observability/logging"
	"claritext/internal/usecase/keywords"
	"claritext/internal/usecase/session"
)

// KeywordsHandler serves POST /keywords.
type KeywordsHandler struct {
	Svc      *keywords.Service
	Sessions *session.Service
	Logger   *slog.Logger
}

func (h KeywordsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Extract(ctx, req.Text)
	if err != nil {
		respondAnalysisError(w, logger, "keywords", err)
		return
	}

	apihttp.RecordAnalysis("keywords", string(result.Mode), utf8.RuneCountInString(req.Text), time.Since(start))

	if h.Sessions != nil {
		words := make([]string, 0, len(result.TopWords))
		for _, wc := range result.TopWords {
			words = append(words, wc.Word)
		}
		h.Sessions.RecordAsync(&entity.AnalysisSession{
			Operation:  "keywords",
			Mode:       string(result.Mode),
			InputChars: utf8.RuneCountInString(req.Text),
			Result:     previewResult(strings.Join(words, ", ")),
		})
	}

	logger.Info("keywords served",
		slog.String("mode", string(result.Mode)),
		slog.Int("top_words", len(result.TopWords)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, toKeywordsDTO(result))
}
