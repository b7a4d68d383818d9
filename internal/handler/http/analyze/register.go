package analyze

import (
	"log/slog"
	"net/http"

	"claritext/internal/usecase/entities"
	"claritext/internal/usecase/keywords"
	"claritext/internal/usecase/normalize"
	"claritext/internal/usecase/patterns"
	"claritext/internal/usecase/sentiment"
	"claritext/internal/usecase/session"
	"claritext/internal/usecase/summarize"
)

// Services bundles the analysis services the endpoints dispatch to.
type Services struct {
	Normalize *normalize.Service
	Summarize *summarize.Service
	Patterns  *patterns.Service
	Keywords  *keywords.Service
	Entities  *entities.Service
	Sentiment *sentiment.Service
}

// Register registers the analysis endpoints with the given mux. Sessions
// may be nil to disable history recording.
func Register(mux *http.ServeMux, svcs Services, sessions *session.Service, logger *slog.Logger) {
	mux.Handle("POST /normalize", NormalizeHandler{Svc: svcs.Normalize, Sessions: sessions, Logger: logger})
	mux.Handle("POST /summarize", SummarizeHandler{Svc: svcs.Summarize, Sessions: sessions, Logger: logger})
	mux.Handle("POST /patterns", PatternsHandler{Svc: svcs.Patterns, Sessions: sessions, Logger: logger})
	mux.Handle("POST /keywords", KeywordsHandler{Svc: svcs.Keywords, Sessions: sessions, Logger: logger})
	mux.Handle("POST /entities", EntitiesHandler{Svc: svcs.Entities, Sessions: sessions, Logger: logger})
	mux.Handle("POST /sentiment", SentimentHandler{Svc: svcs.Sentiment, Sessions: sessions, Logger: logger})
}
