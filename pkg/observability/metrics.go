package observability

import (
	"context"

	"github.com/aretw0/logframe/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine collectors.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Findings    *prometheus.HistogramVec
	Score       *prometheus.GaugeVec
	Duration    *prometheus.HistogramVec
	Failures    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logframe_evaluations_total",
				Help: "Total number of completed engine evaluations",
			},
			[]string{"operation"},
		),
		Findings: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logframe_findings",
				Help:    "Issues, warnings or feedback items raised per evaluation",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
			[]string{"operation"},
		),
		Score: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "logframe_score",
				Help: "Last score produced by a scoring evaluation",
			},
			[]string{"operation"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logframe_evaluation_duration_seconds",
				Help:    "Duration of engine evaluations, collaborator calls included",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"operation"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logframe_collaborator_failures_total",
				Help: "Lookups and recordings that failed and were degraded",
			},
			[]string{"operation", "type"},
		),
	}

	for _, c := range []prometheus.Collector{m.Evaluations, m.Findings, m.Score, m.Duration, m.Failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	failed := func(_ context.Context, e *domain.CollaboratorEvent) {
		m.Failures.WithLabelValues(string(e.Operation), string(e.Type)).Inc()
	}
	return domain.LifecycleHooks{
		OnEvaluation: func(_ context.Context, e *domain.EvaluationEvent) {
			op := string(e.Operation)
			m.Evaluations.WithLabelValues(op).Inc()
			m.Findings.WithLabelValues(op).Observe(float64(e.Findings))
			m.Duration.WithLabelValues(op).Observe(e.Duration.Seconds())
			if e.Score != nil {
				m.Score.WithLabelValues(op).Set(*e.Score)
			}
		},
		OnLookupFailed: failed,
		OnRecordFailed: failed,
	}
}

// WriteTextfile writes every metric of g to path in the Prometheus text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
