// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session event labels.
const (
	SessionLogin     = "login"
	SessionLogout    = "logout"
	SessionRestored  = "restored"
	SessionMalformed = "malformed"
)

var (
	// SessionEvents counts session store transitions by event.
	SessionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamechanger_session_events_total",
		Help: "Total number of session store events by type",
	}, []string{"event"})

	// FeedLoads counts feed loads by the source that served them.
	FeedLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamechanger_feed_loads_total",
		Help: "Total number of feed loads by source",
	}, []string{"source"})

	// FeedFallbacks counts loads served from the fixed fallback list.
	FeedFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gamechanger_feed_fallback_total",
		Help: "Total number of feed loads that fell back to the built-in posts",
	})

	// IgnoredInputs counts mutations dropped because their input was blank.
	IgnoredInputs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamechanger_ignored_inputs_total",
		Help: "Total number of blank inputs ignored by kind",
	}, []string{"kind"})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gamechanger_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// RecordStoreLatency records record store operation latency by driver and operation.
	RecordStoreLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gamechanger_record_store_latency_seconds",
		Help:    "Record store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"driver", "operation"})
)

// TrackRecordOp returns a function that records the operation latency when called (e.g. defer).
func TrackRecordOp(driver, operation string) func() {
	start := time.Now()
	return func() {
		RecordStoreLatency.WithLabelValues(driver, operation).Observe(time.Since(start).Seconds())
	}
}
