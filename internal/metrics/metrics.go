package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Service agrupa los collectors de Prometheus del pipeline.
type Service struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	rows     *prometheus.GaugeVec
}

func NewService(reg prometheus.Registerer) *Service {
	s := &Service{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geoacq_pipeline_runs_total",
			Help: "Pipeline runs by final status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "geoacq_pipeline_run_duration_seconds",
			Help:    "Wall time of a full pipeline run.",
			Buckets: prometheus.DefBuckets,
		}),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "geoacq_published_rows",
			Help: "Rows published on the last run, per worksheet.",
		}, []string{"worksheet"}),
	}
	reg.MustRegister(s.runs, s.duration, s.rows)
	return s
}

func (s *Service) ObserveRun(status string, d time.Duration) {
	if s == nil {
		return
	}
	s.runs.WithLabelValues(status).Inc()
	s.duration.Observe(d.Seconds())
}

func (s *Service) SetPublishedRows(worksheet string, n int) {
	if s == nil {
		return
	}
	s.rows.WithLabelValues(worksheet).Set(float64(n))
}
