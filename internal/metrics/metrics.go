// Package metrics provides Prometheus instrumentation for the POS backend.
//
// Wire it up once when building the router:
//
//	router.Use(metrics.Middleware)
//	router.Get("/metrics", metrics.Handler().ServeHTTP)
package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes, broken down
	// by method and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "smartmart",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartmart",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "status"},
	)

	// SalesCommitted counts completed checkouts.
	SalesCommitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "smartmart",
		Subsystem: "pos",
		Name:      "sales_committed_total",
		Help:      "Total number of committed sales.",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, SalesCommitted)
}

// Middleware records request count and latency for every route.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := strconv.Itoa(ww.Status())
		RequestTotal.WithLabelValues(r.Method, status).Inc()
		RequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }
