// SPDX-License-Identifier: MIT

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/plbecker/scikit-learn/selftrain"
)

const (
	namespace = "selftrain"

	// statusError labels fits that returned an error.
	statusError = "error"
)

// Metrics holds the collectors shared by every run of a process. The run
// label separates concurrent experiments.
type Metrics struct {
	fits       *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	promoted   *prometheus.CounterVec
	rounds     *prometheus.CounterVec
	lastRound  *prometheus.GaugeVec
}

// NewMetrics registers the collectors on reg. Registering twice on the same
// registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		fits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fits_total",
			Help:      "Completed Fit calls by termination reason",
		}, []string{"run", "termination"}),
		iterations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "iterations",
			Help:      "Self-training iterations executed per Fit",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}, []string{"run"}),
		promoted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promoted_total",
			Help:      "Samples pseudo-labeled across all iterations",
		}, []string{"run"}),
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Self-training iterations observed through the progress callback",
		}, []string{"run"}),
		lastRound: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_round_promoted",
			Help:      "Samples promoted in the most recent iteration",
		}, []string{"run"}),
	}
}

// Reporter returns a progress callback feeding the per-iteration series of run.
func (m *Metrics) Reporter(run string) selftrain.ProgressFunc {
	promoted := m.promoted.WithLabelValues(run)
	rounds := m.rounds.WithLabelValues(run)
	last := m.lastRound.WithLabelValues(run)

	return func(_, n int) {
		rounds.Inc()
		promoted.Add(float64(n))
		last.Set(float64(n))
	}
}

// ObserveFit records the outcome of one Fit of run. A non-nil err is counted under
// termination="error" and the iteration count is not observed.
func (m *Metrics) ObserveFit(run string, term selftrain.Termination, iterations int, err error) {
	if err != nil {
		m.fits.WithLabelValues(run, statusError).Inc()
		return
	}
	m.fits.WithLabelValues(run, term.String()).Inc()
	m.iterations.WithLabelValues(run).Observe(float64(iterations))
}
