package worker

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewDigestMetrics(t *testing.T) {
	// globalTestMetrics is shared across tests to avoid duplicate
	// Prometheus registration.
	metrics := globalTestMetrics

	if metrics == nil {
		t.Fatal("NewDigestMetrics returned nil")
	}

	if metrics.ConfigMetrics == nil {
		t.Error("ConfigMetrics is nil")
	}

	if metrics.DigestRunsTotal == nil {
		t.Error("DigestRunsTotal is nil")
	}

	if metrics.DigestDurationSeconds == nil {
		t.Error("DigestDurationSeconds is nil")
	}

	if metrics.DigestDocumentsProcessedTotal == nil {
		t.Error("DigestDocumentsProcessedTotal is nil")
	}

	if metrics.DigestLastSuccessTimestamp == nil {
		t.Error("DigestLastSuccessTimestamp is nil")
	}

	// MustRegister is a no-op, it must not panic
	metrics.MustRegister()
}

func TestDigestMetrics_RecordRun(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_worker_digest_runs_total",
		Help: "Test counter",
	}, []string{"status"})

	metrics := &DigestMetrics{DigestRunsTotal: counter}

	metrics.RecordRun("success")
	metrics.RecordRun("success")
	metrics.RecordRun("failure")

	if got := testutil.ToFloat64(counter.WithLabelValues("success")); got != 2 {
		t.Errorf("expected 2 success runs, got %v", got)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("failure")); got != 1 {
		t.Errorf("expected 1 failure run, got %v", got)
	}
}

func TestDigestMetrics_RecordDocumentsProcessed(t *testing.T) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_worker_digest_documents_processed_total",
		Help: "Test counter",
	})

	metrics := &DigestMetrics{DigestDocumentsProcessedTotal: counter}

	metrics.RecordDocumentsProcessed(42)
	metrics.RecordDocumentsProcessed(0)
	metrics.RecordDocumentsProcessed(8)

	if got := testutil.ToFloat64(counter); got != 50 {
		t.Errorf("expected 50 documents processed, got %v", got)
	}
}

func TestDigestMetrics_RecordRunDuration(t *testing.T) {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_worker_digest_duration_seconds",
		Help:    "Test histogram",
		Buckets: []float64{1, 5, 30},
	})

	metrics := &DigestMetrics{DigestDurationSeconds: histogram}

	metrics.RecordRunDuration(0.5)
	metrics.RecordRunDuration(12.0)

	if got := testutil.CollectAndCount(histogram); got != 1 {
		t.Errorf("expected 1 histogram metric, got %d", got)
	}
}

func TestDigestMetrics_RecordLastSuccess(t *testing.T) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_worker_digest_last_success_timestamp",
		Help: "Test gauge",
	})

	metrics := &DigestMetrics{DigestLastSuccessTimestamp: gauge}

	metrics.RecordLastSuccess()

	if got := testutil.ToFloat64(gauge); got <= 0 {
		t.Errorf("expected positive timestamp, got %v", got)
	}
}

func TestDigestMetrics_ConcurrentAccess(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_worker_digest_runs_concurrent_total",
		Help: "Test counter",
	}, []string{"status"})

	metrics := &DigestMetrics{DigestRunsTotal: counter}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				metrics.RecordRun("success")
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(counter.WithLabelValues("success")); got != 1000 {
		t.Errorf("expected 1000 runs, got %v", got)
	}
}
