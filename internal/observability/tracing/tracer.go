// Package tracing provides OpenTelemetry tracing for the HTTP API: a
// shared tracer and middleware that extracts incoming trace context,
// opens a server span per request, and exposes the trace ID to clients.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("claritext")

// GetTracer returns the shared tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
