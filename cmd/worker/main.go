// Command worker runs the scheduled digest: on a cron schedule it fetches
// the configured feeds, summarizes each entry, and records the results to
// the session history.
package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	"claritext/internal/config"
	"claritext/internal/handler/http/respond"
	pgRepo "claritext/internal/infra/adapter/persistence/postgres"
	"claritext/internal/infra/db"
	"claritext/internal/infra/fetcher"
	infragrpc "claritext/internal/infra/grpc"
	"claritext/internal/infra/notifier"
	"claritext/internal/infra/scraper"
	workerPkg "claritext/internal/infra/worker"
	"claritext/internal/observability/logging"
	"claritext/internal/usecase/digest"
	"claritext/internal/usecase/notify"
	"claritext/internal/usecase/session"
	"claritext/internal/usecase/summarize"
	envconfig "claritext/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := workerPkg.NewDigestMetrics()
	metrics.MustRegister()
	cfg, err := workerPkg.LoadConfigFromEnv(logger, metrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Int("max_concurrent", cfg.MaxConcurrent),
		slog.Duration("digest_timeout", cfg.DigestTimeout),
		slog.Int("health_port", cfg.HealthPort))

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", cfg.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	svc, cleanup := setupDigestService(logger, database, cfg)
	defer cleanup()

	notifySvc := setupNotifications(logger)

	startCronWorker(logger, svc, notifySvc, cfg, metrics, healthServer)
}

// waitForMigrations blocks until the API's migrations have created the
// session table, since the worker container may start first.
func waitForMigrations(logger *slog.Logger, db *sql.DB) {
	const probe = "SELECT 1 FROM analysis_sessions LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := db.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

// setupDigestService wires the digest pipeline: feed fetching, optional
// full-article enhancement, the summarizer, and session recording.
// Returns the service and a cleanup function for the annotator connection.
func setupDigestService(logger *slog.Logger, database *sql.DB, cfg *workerPkg.DigestConfig) (*digest.Service, func()) {
	feedURLs := loadFeedURLs(logger)

	feedFetcher := scraper.NewRSSFetcher(newHTTPClient())

	contentFetchConfig, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Warn("invalid content fetch configuration, full-article enhancement disabled",
			slog.Any("error", err))
		contentFetchConfig = fetcher.DefaultConfig()
		contentFetchConfig.Enabled = false
	}

	var contentFetcher digest.ContentFetcher
	if contentFetchConfig.Enabled {
		contentFetcher = fetcher.NewReadabilityFetcher(contentFetchConfig)
		logger.Info("full-article enhancement enabled",
			slog.Int("threshold", contentFetchConfig.Threshold),
			slog.Duration("timeout", contentFetchConfig.Timeout))
	} else {
		logger.Info("full-article enhancement disabled")
	}

	summarizer, cleanup := newSummarizer(logger)

	sessionSvc := &session.Service{Repo: pgRepo.NewSessionRepo(database)}

	digestConfig := digest.DefaultConfig()
	digestConfig.MaxConcurrent = cfg.MaxConcurrent
	if contentFetchConfig.Enabled {
		digestConfig.ContentThreshold = contentFetchConfig.Threshold
	}

	svc := digest.NewService(feedURLs, feedFetcher, contentFetcher, summarizer, sessionSvc, digestConfig)
	return svc, cleanup
}

// newSummarizer builds the extractive summarizer over the external
// annotator when available, falling back to heuristic segmentation.
func newSummarizer(logger *slog.Logger) (digest.Summarizer, func()) {
	annotatorCfg, err := config.LoadAnnotatorConfig()
	if err != nil {
		logger.Error("invalid annotator configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if !annotatorCfg.Enabled {
		logger.Warn("annotator disabled, digest summaries use heuristic segmentation")
		return summarize.NewService(infragrpc.NewNoopAnnotator()), func() {}
	}

	client, err := infragrpc.NewAnnotatorClient(annotatorCfg)
	if err != nil {
		logger.Warn("annotator unreachable, digest summaries use heuristic segmentation",
			slog.String("address", annotatorCfg.GRPCAddress),
			slog.Any("error", err))
		return summarize.NewService(infragrpc.NewNoopAnnotator()), func() {}
	}

	logger.Info("annotator connected", slog.String("address", annotatorCfg.GRPCAddress))
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close annotator client", slog.Any("error", err))
		}
	}
	return summarize.NewService(client), cleanup
}

// loadFeedURLs reads the comma-separated DIGEST_FEEDS list.
func loadFeedURLs(logger *slog.Logger) []string {
	urls := envconfig.GetEnvStringList("DIGEST_FEEDS", nil)
	if len(urls) == 0 {
		logger.Warn("DIGEST_FEEDS is empty, digest runs will process nothing")
		return nil
	}
	logger.Info("feed list loaded", slog.Int("feeds", len(urls)))
	return urls
}

// newHTTPClient creates the HTTP client for feed fetching. TLS 1.2+ is
// enforced.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// setupNotifications builds the digest report dispatcher from the webhook
// environment variables. With no webhook configured all channels stay
// disabled and dispatch is a no-op.
func setupNotifications(logger *slog.Logger) notify.Service {
	webhookTimeout := envconfig.GetEnvDuration("NOTIFY_WEBHOOK_TIMEOUT", 10*time.Second)
	if err := envconfig.ValidatePositiveDuration(webhookTimeout); err != nil {
		logger.Warn("invalid notification webhook timeout, using default", slog.Any("error", err))
		webhookTimeout = 10 * time.Second
	}

	slackURL := os.Getenv("SLACK_WEBHOOK_URL")
	discordURL := os.Getenv("DISCORD_WEBHOOK_URL")

	channels := []notify.Channel{
		notify.NewSlackChannel(notifier.SlackConfig{
			Enabled:    slackURL != "",
			WebhookURL: slackURL,
			Timeout:    webhookTimeout,
		}),
		notify.NewDiscordChannel(notifier.DiscordConfig{
			Enabled:    discordURL != "",
			WebhookURL: discordURL,
			Timeout:    webhookTimeout,
		}),
	}

	enabled := 0
	for _, ch := range channels {
		if ch.IsEnabled() {
			enabled++
		}
	}
	logger.Info("digest notifications configured", slog.Int("enabled_channels", enabled))

	return notify.NewService(channels, 2)
}

// startCronWorker starts the cron scheduler and runs the digest job on the
// configured schedule.
func startCronWorker(logger *slog.Logger, svc *digest.Service, notifySvc notify.Service, cfg *workerPkg.DigestConfig, metrics *workerPkg.DigestMetrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runDigestJob(logger, svc, notifySvc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}

// runDigestJob executes one digest run with timeout and error handling,
// then dispatches the run report to the notification channels.
func runDigestJob(logger *slog.Logger, svc *digest.Service, notifySvc notify.Service, cfg *workerPkg.DigestConfig, metrics *workerPkg.DigestMetrics) {
	startTime := time.Now()
	metrics.RecordRun("started")
	logger.Info("digest started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DigestTimeout)
	defer cancel()

	stats, err := svc.Run(ctx)
	if err != nil {
		sanitized := respond.SanitizeError(err)
		logger.Error("digest failed", slog.String("error", sanitized))
		metrics.RecordRun("failure")
		metrics.RecordRunDuration(time.Since(startTime).Seconds())
		_ = notifySvc.NotifyDigestRun(ctx, &notifier.Report{
			Status:     "failure",
			Error:      sanitized,
			Duration:   time.Since(startTime),
			FinishedAt: time.Now(),
		})
		return
	}

	metrics.RecordRun("success")
	metrics.RecordRunDuration(time.Since(startTime).Seconds())
	metrics.RecordDocumentsProcessed(int(stats.Summarized))
	metrics.RecordLastSuccess()

	logger.Info("digest completed",
		slog.Int("feeds", stats.Feeds),
		slog.Int("feed_errors", stats.FeedErrors),
		slog.Int64("items", stats.Items),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("summarized", stats.Summarized),
		slog.Int64("summarize_errors", stats.SummarizeErrors),
		slog.Duration("duration", stats.Duration),
	)

	_ = notifySvc.NotifyDigestRun(ctx, &notifier.Report{
		Status:          "success",
		Feeds:           stats.Feeds,
		FeedErrors:      stats.FeedErrors,
		Items:           stats.Items,
		Skipped:         stats.Skipped,
		Summarized:      stats.Summarized,
		SummarizeErrors: stats.SummarizeErrors,
		Duration:        stats.Duration,
		FinishedAt:      time.Now(),
	})
}
