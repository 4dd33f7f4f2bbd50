package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "equipbook_frontend",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Backend calls made by the API client",
		},
		[]string{"operation", "outcome"},
	)

	callDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "equipbook_frontend",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Backend round trip duration",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	fallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "equipbook_frontend",
			Subsystem: "api",
			Name:      "fallbacks_total",
			Help:      "Failed backend calls answered with a fallback value",
		},
		[]string{"operation", "kind"},
	)
)

func observeCall(op string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	callsTotal.WithLabelValues(op, outcome).Inc()
	callDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
