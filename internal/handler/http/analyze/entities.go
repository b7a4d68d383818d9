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
	"claritext/internal/usecase/entities"
	"claritext/internal/usecase/session"
)

// EntitiesHandler serves POST /entities. Recognition has no heuristic
// fallback, so annotator outages surface as 503 rather than a degraded
// result.
type EntitiesHandler struct {
	Svc      *entities.Service
	Sessions *session.Service
	Logger   *slog.Logger
}

func (h EntitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
		respondAnalysisError(w, logger, "entities", err)
		return
	}

	apihttp.RecordAnalysis("entities", "full", utf8.RuneCountInString(req.Text), time.Since(start))

	if h.Sessions != nil {
		h.Sessions.RecordAsync(&entity.AnalysisSession{
			Operation:  "entities",
			Mode:       "full",
			InputChars: utf8.RuneCountInString(req.Text),
			Result: fmt.Sprintf("persons=%d places=%d orgs=%d dates=%d quantities=%d",
				len(result.Persons), len(result.Places), len(result.Organizations),
				len(result.Dates), len(result.Quantities)),
		})
	}

	respond.JSON(w, http.StatusOK, toEntitiesDTO(result))
}
