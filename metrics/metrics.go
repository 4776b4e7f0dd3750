// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for puzzle sessions.
//
// Collectors are registered on the Registry given in Config, never on the
// global default registry, so several sessions (and tests) may each own a
// private set. Label values come from closed vocabularies (event kinds,
// verdicts, classifications, outcomes) and cannot explode cardinality.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/impasse"
	"github.com/katalvlaran/katona/verify"
)

// Config names and places the collectors.
type Config struct {
	Namespace string
	Subsystem string
	// Registry receives the collectors. Nil means a fresh registry.
	Registry prometheus.Registerer
}

// DefaultConfig returns the katona/session naming with a fresh registry.
func DefaultConfig() Config {
	return Config{Namespace: "katona", Subsystem: "session"}
}

// Metrics holds the session collectors.
type Metrics struct {
	events    *prometheus.CounterVec
	verdicts  *prometheus.CounterVec
	impasses  *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	intervals *prometheus.HistogramVec
	registry  prometheus.Registerer
}

// New registers the collectors described by cfg. It panics if they are
// already registered on cfg.Registry, as promauto does.
func New(cfg Config) *Metrics {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	f := promauto.With(cfg.Registry)
	return &Metrics{
		registry: cfg.Registry,
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "events_total",
			Help:      "Semantic events by kind.",
		}, []string{"kind"}),
		verdicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "verdicts_total",
			Help:      "Determined verifier verdicts by result.",
		}, []string{"result"}),
		impasses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "impasse_classifications_total",
			Help:      "Impasse classifications of move events by kind and class.",
		}, []string{"kind", "class"}),
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "outcomes_total",
			Help:      "Finished sessions by outcome.",
		}, []string{"outcome"}),
		intervals: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "event_interval_seconds",
			Help:      "Time since the previous semantic event, by kind.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120, 300},
		}, []string{"kind"}),
	}
}

// Registry returns the registerer the collectors live on.
func (m *Metrics) Registry() prometheus.Registerer { return m.registry }

// Event counts ev's kind and observes the interval preceding it.
func (m *Metrics) Event(k event.Kind, interval float64) {
	m.events.WithLabelValues(k.String()).Inc()
	m.intervals.WithLabelValues(k.String()).Observe(interval)
}

// Verdict counts v when determined.
func (m *Metrics) Verdict(v verify.Verdict) {
	if !v.Determined() {
		return
	}
	m.verdicts.WithLabelValues(v.String()).Inc()
}

// Impasse counts a determined classification of a move kind.
func (m *Metrics) Impasse(k event.Kind, c impasse.Classification) {
	if c == impasse.Undetermined {
		return
	}
	m.impasses.WithLabelValues(k.String(), c.String()).Inc()
}

// Outcome counts a finished session.
func (m *Metrics) Outcome(name string) {
	m.outcomes.WithLabelValues(name).Inc()
}
