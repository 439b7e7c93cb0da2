package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	runs       *prometheus.CounterVec
	steps      prometheus.Histogram
	cachedRuns prometheus.Gauge
}

// newMetrics uses a private registry so several servers can coexist in one
// process.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortscope",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortscope",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortscope",
			Name:      "runs_total",
			Help:      "Recorded algorithm runs by algorithm.",
		}, []string{"algorithm"}),
		steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sortscope",
			Name:      "run_steps",
			Help:      "Number of steps recorded per run.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}),
		cachedRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sortscope",
			Name:      "cached_runs",
			Help:      "Runs currently held in memory.",
		}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.runs, m.steps, m.cachedRuns)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
