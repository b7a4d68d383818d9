package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupRecorder installs an in-memory exporter and rebinds the package
// tracer to it. Cleanup restores a fresh provider so tests stay isolated.
func setupRecorder(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("claritext")
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		tracer = otel.Tracer("claritext")
	})
	return exporter, tp
}

func okHandlerWithStatus(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func TestMiddleware_CreatesServerSpan(t *testing.T) {
	exporter, tp := setupRecorder(t)

	handler := Middleware(okHandlerWithStatus(http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/normalize", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "POST /normalize" {
		t.Errorf("unexpected span name %q", span.Name)
	}

	got := map[string]bool{}
	for _, attr := range span.Attributes {
		switch attr.Key {
		case "http.method":
			got["method"] = attr.Value.AsString() == "POST"
		case "http.path":
			got["path"] = attr.Value.AsString() == "/normalize"
		case "http.status_code":
			got["status"] = attr.Value.AsInt64() == 200
		}
	}
	for _, key := range []string{"method", "path", "status"} {
		if !got[key] {
			t.Errorf("attribute %s missing or wrong", key)
		}
	}
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	setupRecorder(t)

	handler := Middleware(okHandlerWithStatus(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	traceID := rec.Header().Get("X-Trace-Id")
	if traceID == "" {
		t.Fatal("expected X-Trace-Id header to be set")
	}
	if len(traceID) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(traceID))
	}
}

func TestMiddleware_PropagatesIncomingTraceContext(t *testing.T) {
	exporter, tp := setupRecorder(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})

	handler := Middleware(okHandlerWithStatus(http.StatusOK))

	req := httptest.NewRequest(http.MethodPost, "/summarize", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID not propagated, got %s", got)
	}
}

func TestMiddleware_MarksErrorSpansFor5xx(t *testing.T) {
	exporter, tp := setupRecorder(t)

	handler := Middleware(okHandlerWithStatus(http.StatusInternalServerError))

	req := httptest.NewRequest(http.MethodPost, "/sentiment", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	found := false
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" && attr.Value.AsBool() {
			found = true
		}
	}
	if !found {
		t.Error("expected error attribute for 5xx response")
	}
}

func TestMiddleware_NoErrorAttributeFor4xx(t *testing.T) {
	exporter, tp := setupRecorder(t)

	handler := Middleware(okHandlerWithStatus(http.StatusNotFound))

	req := httptest.NewRequest(http.MethodGet, "/sessions/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" {
			t.Error("unexpected error attribute for 4xx response")
		}
	}
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	if rw.statusCode != http.StatusOK {
		t.Errorf("expected default 200, got %d", rw.statusCode)
	}
	rw.WriteHeader(http.StatusCreated)
	if rw.statusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", rw.statusCode)
	}
}
