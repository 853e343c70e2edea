package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codelijsten_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"handler", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codelijsten_http_request_duration_seconds",
			Help:    "HTTP request latency per handler",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler"},
	)

	negotiatedFormats = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codelijsten_negotiated_formats_total",
			Help: "Number of responses served per negotiated RDF format",
		},
		[]string{"format"},
	)
)
