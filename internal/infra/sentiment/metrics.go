package sentiment

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ClassificationMetricsRecorder defines the interface for recording
// classification metrics. Abstracting it keeps the adapters testable with
// a mock recorder and reusable across providers (Claude, OpenAI).
type ClassificationMetricsRecorder interface {
	// RecordConfidence records the model's confidence for one classification.
	RecordConfidence(score float64)

	// RecordParseFailure increments the counter for replies the adapter
	// could not turn into a classification.
	RecordParseFailure()

	// RecordDuration records the time taken by one classification API call.
	RecordDuration(duration time.Duration)
}

// PrometheusClassificationMetrics implements ClassificationMetricsRecorder
// using Prometheus metrics. This is the production implementation.
type PrometheusClassificationMetrics struct {
	confidenceHistogram prometheus.Histogram
	parseFailureCounter prometheus.Counter
	durationHistogram   prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusClassificationMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// NewPrometheusClassificationMetrics creates the Prometheus-based metrics
// recorder. Uses singleton pattern to avoid duplicate metric registration
// in tests.
func NewPrometheusClassificationMetrics() *PrometheusClassificationMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusClassificationMetrics{
			confidenceHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "sentiment_classification_confidence",
				Help:    "Distribution of model confidence scores for sentiment classifications",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
			}),
			parseFailureCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "sentiment_classification_parse_failures_total",
				Help: "Total number of model replies that could not be parsed as a classification",
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "sentiment_classification_duration_seconds",
				Help:    "Time taken to classify sentiment via a hosted model API",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordConfidence implements ClassificationMetricsRecorder.RecordConfidence
func (p *PrometheusClassificationMetrics) RecordConfidence(score float64) {
	p.confidenceHistogram.Observe(score)
}

// RecordParseFailure implements ClassificationMetricsRecorder.RecordParseFailure
func (p *PrometheusClassificationMetrics) RecordParseFailure() {
	p.parseFailureCounter.Inc()
}

// RecordDuration implements ClassificationMetricsRecorder.RecordDuration
func (p *PrometheusClassificationMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}
