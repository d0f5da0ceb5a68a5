package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Tracks the number of outbound API calls to Porkbun.
	PorkbunRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "porkbun_api_requests_total",
			Help: "Total number of Porkbun API requests made (by operation and outcome).",
		},
		[]string{"operation", "status"},
	)

	// Measures duration of API requests to Porkbun.
	PorkbunRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "porkbun_api_request_duration_seconds",
			Help:    "Duration of Porkbun API requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"operation"},
	)
)

// IncRequest counts one outbound call. status is an HTTP status code or an
// error kind for calls that never produced a response.
func IncRequest(operation, status string) {
	PorkbunRequestsTotal.WithLabelValues(operation, status).Inc()
}

// ObserveRequest records the elapsed time of one outbound call.
func ObserveRequest(operation string, start time.Time) {
	PorkbunRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// StartServer serves /metrics on addr in the background.
func StartServer(addr string) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		http.ListenAndServe(addr, nil) //nolint:errcheck
	}()
}
