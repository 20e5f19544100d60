package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks the degraded paths of impact analysis that never surface as request errors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	analysisRuns     *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	campAnalyses     *prometheus.CounterVec
	campFailures     prometheus.Counter
	persistFailures  prometheus.Counter
	mlRequests       *prometheus.CounterVec
	mlDuration       prometheus.Histogram
	mlAvailable      prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analysisRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idro_analysis_runs_total",
			Help: "Mission impact analyses by outcome.",
		}, []string{"outcome"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "idro_analysis_duration_seconds",
			Help:    "Wall time of a full mission impact analysis.",
			Buckets: prometheus.DefBuckets,
		}),
		campAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idro_camp_analyses_total",
			Help: "Camp analyses included in a report, by prediction source.",
		}, []string{"source"}),
		campFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idro_camp_failures_total",
			Help: "Camps dropped from a report after an unexpected failure.",
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idro_prediction_persist_failures_total",
			Help: "Prediction records that could not be written.",
		}),
		mlRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idro_ml_requests_total",
			Help: "Prediction service calls by outcome.",
		}, []string{"outcome"}),
		mlDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "idro_ml_request_duration_seconds",
			Help:    "Latency of prediction service calls.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		mlAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "idro_ml_available",
			Help: "1 when the last prediction service health probe succeeded.",
		}),
	}

	reg.MustRegister(
		m.analysisRuns,
		m.analysisDuration,
		m.campAnalyses,
		m.campFailures,
		m.persistFailures,
		m.mlRequests,
		m.mlDuration,
		m.mlAvailable,
	)

	return m
}

func (m *Metrics) ObserveAnalysis(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.analysisRuns.WithLabelValues(outcome).Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) CampAnalyzed(source string) {
	if m == nil {
		return
	}
	m.campAnalyses.WithLabelValues(source).Inc()
}

func (m *Metrics) CampFailed() {
	if m == nil {
		return
	}
	m.campFailures.Inc()
}

func (m *Metrics) PersistFailed() {
	if m == nil {
		return
	}
	m.persistFailures.Inc()
}

func (m *Metrics) ObserveMLRequest(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.mlRequests.WithLabelValues(outcome).Inc()
	m.mlDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) SetMLAvailable(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.mlAvailable.Set(1)
		return
	}
	m.mlAvailable.Set(0)
}
