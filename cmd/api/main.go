// Command api serves the text analysis REST API: the six analysis
// operations, the session history, token issuing, health checks, and
// Prometheus metrics.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"claritext/internal/annotate"
	"claritext/internal/config"
	pgRepo "claritext/internal/infra/adapter/persistence/postgres"
	"claritext/internal/infra/db"
	infragrpc "claritext/internal/infra/grpc"
	infrasentiment "claritext/internal/infra/sentiment"
	"claritext/internal/lexicon"
	"claritext/internal/observability/logging"
	"claritext/internal/observability/tracing"

	"claritext/internal/usecase/entities"
	"claritext/internal/usecase/keywords"
	"claritext/internal/usecase/normalize"
	"claritext/internal/usecase/patterns"
	"claritext/internal/usecase/sentiment"
	"claritext/internal/usecase/session"
	"claritext/internal/usecase/summarize"

	hhttp "claritext/internal/handler/http"
	"claritext/internal/handler/http/analyze"
	hauth "claritext/internal/handler/http/auth"
	"claritext/internal/handler/http/requestid"
	hsessions "claritext/internal/handler/http/sessions"
	authservice "claritext/internal/service/auth"
	envconfig "claritext/pkg/config"
)

// annotatorProvider is what both the gRPC annotator client and the no-op
// replacement provide.
type annotatorProvider interface {
	annotate.Annotator
	entities.Provider
	Health(ctx context.Context) (*infragrpc.HealthStatus, error)
	Close() error
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	validateAdminCredentials(logger)
	validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	annotator := initAnnotator(logger)
	defer func() {
		if err := annotator.Close(); err != nil {
			logger.Error("failed to close annotator client", slog.Any("error", err))
		}
	}()

	sentimentProvider := initSentimentProvider(logger)
	defer func() {
		if err := sentimentProvider.Close(); err != nil {
			logger.Error("failed to close sentiment provider", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, annotator, sentimentProvider, getVersion())

	runServer(logger, handler, getVersion())
}

// validateAdminCredentials refuses to start with empty or weak admin
// credentials.
func validateAdminCredentials(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// validateJWTSecret enforces a minimum strength on the token signing key.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initAnnotator connects to the external annotation service, falling back
// to the no-op client when the annotator is disabled or unreachable. The
// API still serves every endpoint then; operations with a heuristic
// fallback degrade, the rest report unavailability.
func initAnnotator(logger *slog.Logger) annotatorProvider {
	cfg, err := config.LoadAnnotatorConfig()
	if err != nil {
		logger.Error("invalid annotator configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if !cfg.Enabled {
		logger.Warn("annotator disabled, running on heuristic fallback")
		return infragrpc.NewNoopAnnotator()
	}

	client, err := infragrpc.NewAnnotatorClient(cfg)
	if err != nil {
		logger.Warn("annotator unreachable, running on heuristic fallback",
			slog.String("address", cfg.GRPCAddress),
			slog.Any("error", err))
		return infragrpc.NewNoopAnnotator()
	}

	logger.Info("annotator connected", slog.String("address", cfg.GRPCAddress))
	return client
}

// initSentimentProvider selects the sentiment backend by configured API
// key: Anthropic first, then OpenAI, then the disabled no-op.
func initSentimentProvider(logger *slog.Logger) sentiment.Provider {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		provider, err := infrasentiment.NewClaude(key)
		if err != nil {
			logger.Error("failed to initialize claude sentiment provider", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("sentiment provider initialized", slog.String("provider", "claude"))
		return provider
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		provider, err := infrasentiment.NewOpenAI(key)
		if err != nil {
			logger.Error("failed to initialize openai sentiment provider", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("sentiment provider initialized", slog.String("provider", "openai"))
		return provider
	}
	logger.Warn("no sentiment API key configured, sentiment analysis disabled")
	return infrasentiment.NewNoOp()
}

func getVersion() string {
	return envconfig.GetEnvString("VERSION", "dev")
}

// setupServer wires services, routes, and the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, annotator annotatorProvider, sentimentProvider sentiment.Provider, version string) http.Handler {
	lex, err := lexicon.Load()
	if err != nil {
		logger.Warn("lexicon load failed, running with built-in defaults", slog.Any("error", err))
		lex = lexicon.Default()
	}

	sessionSvc := &session.Service{Repo: pgRepo.NewSessionRepo(database)}

	svcs := analyze.Services{
		Normalize: normalize.NewService(annotator, lex),
		Summarize: summarize.NewService(annotator),
		Patterns:  patterns.NewService(),
		Keywords:  keywords.NewService(annotator, lex),
		Entities:  entities.NewService(annotator),
		Sentiment: sentiment.NewService(sentimentProvider),
	}

	authProvider, publicEndpoints := loadAuthPolicy(logger)
	authService := authservice.NewAuthService(authProvider, publicEndpoints)

	// Token issuing gets a tight rate limit to slow brute forcing.
	authRateLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", authRateLimiter.Limit(hauth.TokenHandler(authService)))

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	annotatorHealth := hhttp.NewAnnotatorHealthHandler(annotator)
	mux.HandleFunc("GET /health/annotator", annotatorHealth.Health)
	mux.HandleFunc("GET /ready/annotator", annotatorHealth.Ready)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	analyze.Register(mux, svcs, sessionSvc, logger)
	hsessions.Register(mux, sessionSvc, logger)

	return applyMiddleware(logger, mux)
}

// loadAuthPolicy builds the auth provider and public endpoint list from
// the compiled-in defaults, overridden by the YAML policy file when
// SECURITY_CONFIG_PATH is set.
func loadAuthPolicy(logger *slog.Logger) (authservice.AuthProvider, []string) {
	minLength := hauth.MinPasswordLength()
	weakPasswords := hauth.DefaultWeakPasswords()
	publicEndpoints := hauth.PublicEndpoints

	if path := os.Getenv("SECURITY_CONFIG_PATH"); path != "" {
		secCfg, err := config.LoadSecurityConfig(path)
		if err != nil {
			logger.Error("failed to load security config", slog.String("path", path), slog.Any("error", err))
			os.Exit(1)
		}
		minLength = secCfg.Security.Auth.Basic.MinPasswordLength
		if len(secCfg.Security.Auth.Basic.WeakPasswords) > 0 {
			weakPasswords = secCfg.Security.Auth.Basic.WeakPasswords
		}
		if len(secCfg.Security.PublicEndpoints) > 0 {
			publicEndpoints = secCfg.Security.PublicEndpoints
		}
		logger.Info("security config loaded", slog.String("path", path))
	}

	return hauth.NewBasicAuthProvider(minLength, weakPasswords), publicEndpoints
}

// applyMiddleware wraps the mux, innermost first: metrics, security
// headers, body limit,
// request timeout, input validation, logging, recovery, request ID,
// tracing.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.SecurityHeaders()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Timeout(60 * time.Second)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := envconfig.GetEnvString("API_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
