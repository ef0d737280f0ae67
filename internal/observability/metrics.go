// Package observability exposes Prometheus metrics for the generation
// pipeline.
package observability

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline outcome labels for GenerationRequests.
const (
	OutcomeSuccess       = "success"
	OutcomeBadRequest    = "bad_request"
	OutcomeUpstreamError = "upstream_error"
	OutcomeInvalidFormat = "invalid_format"
	OutcomeCancelled     = "cancelled"
)

var (
	// GenerationRequests counts generation requests by terminal outcome.
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tonechef_generation_requests_total",
		Help: "Generation requests by terminal pipeline outcome.",
	}, []string{"outcome"})

	// GenerationDuration observes end-to-end pipeline latency, dominated by
	// the provider call.
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tonechef_generation_duration_seconds",
		Help:    "End-to-end recipe generation latency.",
		Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
	})

	// RateLimitedRequests counts requests rejected by the rate limiter.
	RateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tonechef_rate_limited_requests_total",
		Help: "Requests rejected with 429 by the rate limiter.",
	})
)

// MetricsHandler returns a Gin handler serving the Prometheus registry
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
