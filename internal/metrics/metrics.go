package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bluo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bluo_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PostInteractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bluo_post_interactions_total",
			Help: "Total number of post interactions",
		},
		[]string{"action"}, // like, unlike, share, unshare, comment
	)

	Sessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bluo_sessions_total",
			Help: "Total number of session lifecycle events",
		},
		[]string{"event"}, // login, register, logout
	)
)

// RecordRequest records one served request. route is the matched route
// pattern, not the raw path.
func RecordRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordInteraction(action string) {
	PostInteractions.WithLabelValues(action).Inc()
}

func RecordSession(event string) {
	Sessions.WithLabelValues(event).Inc()
}
