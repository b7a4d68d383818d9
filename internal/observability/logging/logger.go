// Package logging provides structured logging helpers over log/slog:
// consistent logger construction and request ID propagation from the
// request context into log entries.
package logging

import (
	"context"
	"log/slog"
	"os"

	"claritext/internal/handler/http/requestid"
)

// NewLogger creates a structured logger with JSON output. The level is
// controlled by the LOG_LEVEL environment variable ("debug" enables debug
// logging); source locations are attached at warn level and below.
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})

	return slog.New(handler)
}

// NewTextLogger creates a structured logger with human-readable text
// output for local development.
func NewTextLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})

	return slog.New(handler)
}

// WithRequestID returns a logger carrying the request ID from the context,
// so entries from one request can be correlated.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
