package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the assessment engine.
type Metrics struct {
	Assessments        *prometheus.CounterVec   // labels: hazard, status
	FetchFailures      *prometheus.CounterVec   // labels: source, reason
	SyntheticFallbacks prometheus.Counter
	AssessmentDuration *prometheus.HistogramVec // labels: hazard
}

// NewMetrics creates and registers all engine metrics with the
// default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Assessments,
		m.FetchFailures,
		m.SyntheticFallbacks,
		m.AssessmentDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risk_engine",
			Name:      "assessments_total",
			Help:      "Completed assessments by hazard type and resulting status.",
		}, []string{"hazard", "status"}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risk_engine",
			Name:      "fetch_failures_total",
			Help:      "Upstream fetch failures by source and reason code.",
		}, []string{"source", "reason"}),
		SyntheticFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "risk_engine",
			Name:      "synthetic_fallbacks_total",
			Help:      "Assessments served with a synthetic weather snapshot.",
		}),
		AssessmentDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "risk_engine",
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a complete fetch-classify-aggregate cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"hazard"}),
	}
}
