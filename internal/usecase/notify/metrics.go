package notify

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_dispatch_total",
			Help: "Total digest report dispatches per channel.",
		},
		[]string{"channel"},
	)

	successTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_success_total",
			Help: "Successful notifications per channel.",
		},
		[]string{"channel"},
	)

	failureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_failure_total",
			Help: "Failed notifications per channel.",
		},
		[]string{"channel"},
	)

	droppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_dropped_total",
			Help: "Notifications dropped before sending, by reason.",
		},
		[]string{"channel", "reason"},
	)

	sendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notify_send_duration_seconds",
			Help:    "Notification send duration per channel.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"channel"},
	)

	circuitBreakerOpenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_circuit_breaker_open_total",
			Help: "Times a channel circuit breaker opened.",
		},
		[]string{"channel"},
	)

	channelsEnabled = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notify_channels_enabled",
			Help: "Number of enabled notification channels.",
		},
	)
)

func recordDispatch(channel string) {
	dispatchTotal.WithLabelValues(channel).Inc()
}

func recordSuccess(channel string, duration time.Duration) {
	successTotal.WithLabelValues(channel).Inc()
	sendDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

func recordFailure(channel string, duration time.Duration) {
	failureTotal.WithLabelValues(channel).Inc()
	sendDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

func recordDropped(channel, reason string) {
	droppedTotal.WithLabelValues(channel, reason).Inc()
}

func recordCircuitBreakerOpen(channel string) {
	circuitBreakerOpenTotal.WithLabelValues(channel).Inc()
}

func setChannelsEnabled(count float64) {
	channelsEnabled.Set(count)
}
