package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"
)

// startHealthServer boots a HealthServer on the given port and waits
// briefly for it to come up.
func startHealthServer(t *testing.T, port int) (*HealthServer, context.CancelFunc) {
	t.Helper()

	server := NewHealthServer(fmt.Sprintf("localhost:%d", port), testLogger())
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		if err := server.Start(ctx); err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected server error: %v", err)
		}
	}()

	time.Sleep(100 * time.Millisecond)
	return server, cancel
}

func getStatus(t *testing.T, url string) (int, healthResponse) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("failed to call %s: %v", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Errorf("failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	var hr healthResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}

	return resp.StatusCode, hr
}

func TestHealthServer_Liveness(t *testing.T) {
	_, cancel := startHealthServer(t, 19091)
	defer cancel()

	status, body := getStatus(t, "http://localhost:19091/health")
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if body.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", body.Status)
	}
}

func TestHealthServer_Readiness_NotReady(t *testing.T) {
	_, cancel := startHealthServer(t, 19092)
	defer cancel()

	status, body := getStatus(t, "http://localhost:19092/health/ready")
	if status != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 before SetReady, got %d", status)
	}
	if body.Status != "not ready" {
		t.Errorf("expected status 'not ready', got '%s'", body.Status)
	}
}

func TestHealthServer_Readiness_Ready(t *testing.T) {
	server, cancel := startHealthServer(t, 19093)
	defer cancel()

	server.SetReady(true)

	status, body := getStatus(t, "http://localhost:19093/health/ready")
	if status != http.StatusOK {
		t.Errorf("expected status 200 after SetReady, got %d", status)
	}
	if body.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", body.Status)
	}
}

func TestHealthServer_Readiness_Transition(t *testing.T) {
	server, cancel := startHealthServer(t, 19094)
	defer cancel()

	server.SetReady(true)
	if status, _ := getStatus(t, "http://localhost:19094/health/ready"); status != http.StatusOK {
		t.Errorf("expected 200 after ready, got %d", status)
	}

	server.SetReady(false)
	if status, _ := getStatus(t, "http://localhost:19094/health/ready"); status != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after not ready, got %d", status)
	}
}

func TestHealthServer_GracefulShutdown(t *testing.T) {
	server := NewHealthServer("localhost:19095", testLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- server.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != http.ErrServerClosed {
			t.Errorf("expected http.ErrServerClosed, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestNewHealthServer(t *testing.T) {
	server := NewHealthServer(":9091", slog.Default())

	if server == nil {
		t.Fatal("NewHealthServer returned nil")
	}
	if server.isReady.Load() {
		t.Error("server should start as not ready")
	}
}
