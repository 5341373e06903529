package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	checkinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_checkins_total",
			Help: "Total number of persisted check-ins by outcome",
		},
		[]string{"outcome"},
	)
)

// InitPrometheus registers the metrics. Call this once from main.
func InitPrometheus() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(checkinsTotal)
}

// MetricsMiddleware tracks request counts and latencies.
// The route template is used instead of the raw path so path parameters do
// not explode the label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(path, c.Request.Method, status).Inc()
		httpRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// observeCheckin records the outcome of a persisted check-in
func observeCheckin(outcome string) {
	checkinsTotal.WithLabelValues(outcome).Inc()
}
