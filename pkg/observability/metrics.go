package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/spool/pkg/domain"
)

// Metrics aggregates run-level prometheus collectors for one or more
// engines. All collectors are labeled by machine name so a single
// Metrics value can serve a whole registry of machines.
type Metrics struct {
	runsTotal *prometheus.CounterVec
	runSteps  *prometheus.HistogramVec
	tapeCells *prometheus.HistogramVec
}

// NewMetrics builds the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer to use the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spool_runs_total",
				Help: "Finished runs by machine and outcome.",
			},
			[]string{"machine", "outcome"},
		),
		runSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spool_run_steps",
				Help:    "Transitions executed per run.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"machine"},
		),
		tapeCells: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spool_run_tape_cells",
				Help:    "Final rendered tape length per run.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"machine"},
		),
	}
	reg.MustRegister(m.runsTotal, m.runSteps, m.tapeCells)
	return m
}

// Hooks returns TraceHooks that feed the collectors. Merge them with any
// tracing hooks via domain.TraceHooks.Merge.
func (m *Metrics) Hooks() domain.TraceHooks {
	return domain.TraceHooks{
		OnHalt: func(_ context.Context, ev *domain.HaltEvent) {
			m.runsTotal.WithLabelValues(ev.Machine, string(ev.Outcome)).Inc()
			m.runSteps.WithLabelValues(ev.Machine).Observe(float64(ev.Steps))
			m.tapeCells.WithLabelValues(ev.Machine).Observe(float64(len([]rune(ev.Tape))))
		},
	}
}
