// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Extraction outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeEmpty    = "empty"
	OutcomeFailed   = "fetch_failed"
	OutcomeRejected = "invalid_url"
)

// Metrics groups the collectors of the service
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	RateLimited        prometheus.Counter
	Extractions        *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
	SkippedBlocks      prometheus.Counter
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "housestock_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "housestock_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "housestock_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
		Extractions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "housestock_extractions_total",
			Help: "Total number of product page extractions by outcome",
		}, []string{"outcome"}),
		ExtractionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "housestock_extraction_duration_seconds",
			Help:    "Time taken to fetch and extract a product page",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20},
		}),
		SkippedBlocks: factory.NewCounter(prometheus.CounterOpts{
			Name: "housestock_extraction_skipped_blocks_total",
			Help: "Total number of structured data blocks that could not be parsed",
		}),
	}
}
