package worker

import (
	"claritext/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DigestMetrics provides Prometheus metrics for the digest worker.
// It embeds the standard ConfigMetrics for configuration monitoring and
// adds digest-specific metrics for scheduled run tracking.
//
// Embedded metrics (from ConfigMetrics):
//   - worker_config_load_timestamp
//   - worker_config_validation_errors_total
//   - worker_config_fallbacks_total
//   - worker_config_fallback_active
//
// Digest metrics:
//   - worker_digest_runs_total: total digest runs by status (success/failure)
//   - worker_digest_duration_seconds: duration histogram of digest runs
//   - worker_digest_documents_processed_total: documents processed across runs
//   - worker_digest_last_success_timestamp: Unix timestamp of the last successful run
type DigestMetrics struct {
	*config.ConfigMetrics

	// DigestRunsTotal counts digest runs by status ("success" or "failure").
	DigestRunsTotal *prometheus.CounterVec

	// DigestDurationSeconds measures the duration of digest runs.
	// Buckets cover 1s through 30m, matching typical feed volumes.
	DigestDurationSeconds prometheus.Histogram

	// DigestDocumentsProcessedTotal counts feed documents processed per run.
	DigestDocumentsProcessedTotal prometheus.Counter

	// DigestLastSuccessTimestamp records when the last successful run finished.
	DigestLastSuccessTimestamp prometheus.Gauge
}

// NewDigestMetrics creates a DigestMetrics instance. Metrics are registered
// with the default Prometheus registry via promauto.
func NewDigestMetrics() *DigestMetrics {
	return &DigestMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		DigestRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_digest_runs_total",
			Help: "Total number of digest runs by status (success/failure)",
		}, []string{"status"}),

		DigestDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_digest_duration_seconds",
			Help:    "Duration of digest runs in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		DigestDocumentsProcessedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_digest_documents_processed_total",
			Help: "Total number of feed documents processed across all digest runs",
		}),

		DigestLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_digest_last_success_timestamp",
			Help: "Unix timestamp of the last successful digest run",
		}),
	}
}

// MustRegister is a no-op kept for the usual metrics initialization shape;
// registration already happened via promauto in NewDigestMetrics.
func (m *DigestMetrics) MustRegister() {
	// No-op: metrics are auto-registered via promauto
}

// RecordRun increments the run counter for the given status, which should
// be "success" or "failure".
func (m *DigestMetrics) RecordRun(status string) {
	m.DigestRunsTotal.WithLabelValues(status).Inc()
}

// RecordRunDuration observes the duration of a digest run in seconds.
func (m *DigestMetrics) RecordRunDuration(seconds float64) {
	m.DigestDurationSeconds.Observe(seconds)
}

// RecordDocumentsProcessed adds the number of documents processed in a run.
func (m *DigestMetrics) RecordDocumentsProcessed(count int) {
	m.DigestDocumentsProcessedTotal.Add(float64(count))
}

// RecordLastSuccess records the current time as the last successful run.
func (m *DigestMetrics) RecordLastSuccess() {
	m.DigestLastSuccessTimestamp.SetToCurrentTime()
}
