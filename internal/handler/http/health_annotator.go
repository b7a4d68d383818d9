package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	infragrpc "claritext/internal/infra/grpc"
)

// AnnotatorHealthChecker reports annotator reachability. Both the gRPC
// client and its noop stand-in implement it.
type AnnotatorHealthChecker interface {
	Health(ctx context.Context) (*infragrpc.HealthStatus, error)
}

// AnnotatorHealthHandler provides health check endpoints for the external
// annotator service.
type AnnotatorHealthHandler struct {
	checker AnnotatorHealthChecker
}

// NewAnnotatorHealthHandler creates an annotator health check handler.
func NewAnnotatorHealthHandler(checker AnnotatorHealthChecker) *AnnotatorHealthHandler {
	return &AnnotatorHealthHandler{checker: checker}
}

// AnnotatorHealthResponse is the body of the annotator health endpoints.
type AnnotatorHealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Latency     string `json:"latency,omitempty"`
	CircuitOpen bool   `json:"circuit_open,omitempty"`
	Ready       *bool  `json:"ready,omitempty"`
}

// Health answers GET /health/annotator: 200 when the annotator responds
// healthy, 503 otherwise. An unhealthy annotator does not fail the overall
// service health; the operations degrade to heuristic mode.
func (h *AnnotatorHealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status, err := h.checker.Health(ctx)

	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeAnnotatorHealth(w, AnnotatorHealthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}

	if status == nil || !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		response := AnnotatorHealthResponse{Status: "unhealthy"}
		if status != nil {
			response.Message = status.Message
			response.CircuitOpen = status.CircuitOpen
		}
		writeAnnotatorHealth(w, response)
		return
	}

	w.WriteHeader(http.StatusOK)
	writeAnnotatorHealth(w, AnnotatorHealthResponse{
		Status:  "healthy",
		Latency: status.Latency.String(),
	})
}

// Ready answers GET /ready/annotator: readiness follows the circuit breaker
// state only. The annotator can be unhealthy yet ready while the circuit is
// still closed.
func (h *AnnotatorHealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status, err := h.checker.Health(ctx)

	w.Header().Set("Content-Type", "application/json")

	if status == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		ready := false
		msg := "health check failed"
		if err != nil {
			msg = err.Error()
		}
		writeAnnotatorHealth(w, AnnotatorHealthResponse{Ready: &ready, Message: msg})
		return
	}

	if status.CircuitOpen {
		w.WriteHeader(http.StatusServiceUnavailable)
		ready := false
		writeAnnotatorHealth(w, AnnotatorHealthResponse{Ready: &ready, Message: "circuit breaker open"})
		return
	}

	w.WriteHeader(http.StatusOK)
	ready := true
	writeAnnotatorHealth(w, AnnotatorHealthResponse{Ready: &ready})
}

func writeAnnotatorHealth(w http.ResponseWriter, response AnnotatorHealthResponse) {
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode annotator health response", slog.Any("error", err))
	}
}
