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
	"claritext/internal/usecase/patterns"
	"claritext/internal/usecase/session"
)

// PatternsHandler serves POST /patterns.
type PatternsHandler struct {
	Svc      *patterns.Service
	Sessions *session.Service
	Logger   *slog.Logger
}

func (h PatternsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
		respondAnalysisError(w, logger, "patterns", err)
		return
	}

	// Pattern extraction never touches the annotator.
	apihttp.RecordAnalysis("patterns", "full", utf8.RuneCountInString(req.Text), time.Since(start))

	if h.Sessions != nil {
		h.Sessions.RecordAsync(&entity.AnalysisSession{
			Operation:  "patterns",
			Mode:       "full",
			InputChars: utf8.RuneCountInString(req.Text),
			Result:     fmt.Sprintf("dates=%d money=%d emails=%d", len(result.Dates), len(result.Money), len(result.Emails)),
		})
	}

	respond.JSON(w, http.StatusOK, toPatternsDTO(result))
}
