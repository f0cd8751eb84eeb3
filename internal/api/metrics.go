package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verdict label values
const (
	verdictInside  = "inside"
	verdictOutside = "outside"
	verdictNone    = "none" // envelope only, no design point
)

// Rejection reasons
const (
	reasonMalformed   = "malformed"
	reasonInvalid     = "invalid"
	reasonRateLimited = "rate_limited"
)

// metrics are registered on a private registry so several servers can live
// in one process (tests)
type metrics struct {
	registry *prometheus.Registry

	evaluations     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rejected        *prometheus.CounterVec
	envelopePoints  prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gorcc_evaluations_total",
			Help: "Envelope evaluations by design point verdict",
		}, []string{"verdict"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gorcc_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"route", "method"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gorcc_rejected_inputs_total",
			Help: "Requests rejected before evaluation, by reason",
		}, []string{"reason"}),
		envelopePoints: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gorcc_envelope_points",
			Help:    "Number of points per generated envelope",
			Buckets: []float64{51, 81, 121, 201, 401},
		}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) evaluated(design bool, inside bool) {
	switch {
	case !design:
		m.evaluations.WithLabelValues(verdictNone).Inc()
	case inside:
		m.evaluations.WithLabelValues(verdictInside).Inc()
	default:
		m.evaluations.WithLabelValues(verdictOutside).Inc()
	}
}
