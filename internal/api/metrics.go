package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics tracks evaluation activity on a dedicated registry, so tests can
// build routers without fighting over the global one.
type metrics struct {
	registry            *prometheus.Registry
	calculationsTotal   *prometheus.CounterVec
	calculationDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		calculationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "projecteval_calculations_total",
			Help: "Pipeline runs served over HTTP, by outcome.",
		}, []string{"outcome"}),
		calculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "projecteval_calculation_duration_seconds",
			Help:    "Wall-clock duration of one full pipeline run.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.calculationsTotal, m.calculationDuration)
	return m
}

func (m *metrics) observeCalculation(d time.Duration, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	m.calculationsTotal.WithLabelValues(outcome).Inc()
	m.calculationDuration.Observe(d.Seconds())
}

func (m *metrics) httpHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
