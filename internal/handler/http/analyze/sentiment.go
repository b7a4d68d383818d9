package analyze

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"claritext/internal/domain/entity"
	apihttp "claritext/internal/handler/http"
	"claritext/internal/handler/http/respond"
	"claritext/internal/observability/logging"
	"claritext/internal/usecase/sentiment"
	"claritext/internal/usecase/session"
)

// SentimentHandler serves POST /sentiment. When no sentiment provider is
// configured the endpoint answers 503 for every request.
type SentimentHandler struct {
	Svc      *sentiment.Service
	Sessions *session.Service
	Logger   *slog.Logger
}

func (h SentimentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Classify(ctx, req.Text)
	if err != nil {
		respondAnalysisError(w, logger, "sentiment", err)
		return
	}

	apihttp.RecordAnalysis("sentiment", "full", utf8.RuneCountInString(req.Text), time.Since(start))

	if h.Sessions != nil {
		h.Sessions.RecordAsync(&entity.AnalysisSession{
			Operation:  "sentiment",
			Mode:       "full",
			InputChars: utf8.RuneCountInString(req.Text),
			Result:     fmt.Sprintf("%s (%.2f)", result.Sentiment, result.Confidence),
		})
	}

	respond.JSON(w, http.StatusOK, toSentimentDTO(result))
}
