// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upload results.
const (
	ResultOK          = "ok"
	ResultEmpty       = "empty"
	ResultTooLarge    = "too_large"
	ResultUnsupported = "unsupported"
	ResultError       = "error"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracklist_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracklist_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracklist_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Tracklist metrics
var (
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracklist_uploads_total",
			Help: "Total number of uploaded exports by result",
		},
		[]string{"result"},
	)

	TracksParsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracklist_tracks_parsed",
			Help:    "Number of tracks parsed per export",
			Buckets: []float64{1, 5, 10, 20, 30, 50, 75, 100, 200, 500},
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracklist_sessions_active",
			Help: "Number of live web sessions",
		},
	)

	WatchRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracklist_watch_renders_total",
			Help: "Total number of watcher renders by result",
		},
		[]string{"result"},
	)
)

// ObserveUpload records the outcome of a single upload.
func ObserveUpload(result string, tracks int) {
	UploadsTotal.WithLabelValues(result).Inc()
	if result == ResultOK {
		TracksParsed.Observe(float64(tracks))
	}
}
