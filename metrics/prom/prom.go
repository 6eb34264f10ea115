// Package prom implements metrics.Sink on top of
// github.com/prometheus/client_golang, the standard ecosystem choice
// for exactly this shape of metric: a size distribution and two
// outcome-tagged timers.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/rewrite/metrics"
)

// Sink registers and updates a small, fixed set of Prometheus
// collectors matching spec.md §6's three metrics.
type Sink struct {
	runSize    *prometheus.HistogramVec
	visitTimer *prometheus.HistogramVec
	parseTimer *prometheus.HistogramVec
}

// New registers its collectors with reg and returns a ready Sink. Pass
// prometheus.NewRegistry() for an isolated registry in tests, or
// prometheus.DefaultRegisterer for a process-wide one.
func New(reg prometheus.Registerer) *Sink {
	s := &Sink{
		runSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rewrite",
			Name:      "recipe_run_batch_size",
			Help:      "Number of source files a recipe run was given to process.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"recipe"}),
		visitTimer: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rewrite",
			Name:      "recipe_visit_seconds",
			Help:      "Duration of a single per-file recipe visit.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"recipe", "outcome"}),
		parseTimer: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rewrite",
			Name:      "parse_seconds",
			Help:      "Duration of parsing a single source file.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"file_type", "outcome"}),
	}
	reg.MustRegister(s.runSize, s.visitTimer, s.parseTimer)
	return s
}

func (s *Sink) RecordRunSize(recipeName string, batchSize int) {
	s.runSize.WithLabelValues(recipeName).Observe(float64(batchSize))
}

func (s *Sink) ObserveVisit(recipeName string, outcome metrics.Outcome, elapsed time.Duration) {
	s.visitTimer.WithLabelValues(recipeName, string(outcome)).Observe(elapsed.Seconds())
}

func (s *Sink) ObserveParse(fileType string, ok bool, elapsed time.Duration) {
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	s.parseTimer.WithLabelValues(fileType, outcome).Observe(elapsed.Seconds())
}

var _ metrics.Sink = (*Sink)(nil)
