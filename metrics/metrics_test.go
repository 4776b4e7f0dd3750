// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/impasse"
	"github.com/katalvlaran/katona/metrics"
	"github.com/katalvlaran/katona/verify"
)

func newMetrics(t *testing.T) (*metrics.Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	cfg := metrics.DefaultConfig()
	cfg.Registry = reg
	return metrics.New(cfg), reg
}

func TestEvent(t *testing.T) {
	m, reg := newMetrics(t)
	m.Event(event.StickChosen, 1.5)
	m.Event(event.StickChosen, 2)
	m.Event(event.Reset, 0.1)

	n, err := testutil.GatherAndCount(reg, "katona_session_events_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = testutil.GatherAndCount(reg, "katona_session_event_interval_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestVerdict_SkipsUndetermined(t *testing.T) {
	m, reg := newMetrics(t)
	m.Verdict(verify.Undetermined)
	m.Verdict(verify.Correct)
	m.Verdict(verify.Correct)
	m.Verdict(verify.Incorrect)

	n, err := testutil.GatherAndCount(reg, "katona_session_verdicts_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n, "one series per determined verdict")
	assert.Equal(t, 2.0, counterValue(t, reg, "katona_session_verdicts_total", "correct"))
	assert.Equal(t, 1.0, counterValue(t, reg, "katona_session_verdicts_total", "incorrect"))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	assert.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestImpasse_SkipsUndetermined(t *testing.T) {
	m, reg := newMetrics(t)
	m.Impasse(event.StickPlaced, impasse.Undetermined)
	n, err := testutil.GatherAndCount(reg, "katona_session_impasse_classifications_total")
	assert.NoError(t, err)
	assert.Zero(t, n)

	m.Impasse(event.StickPlaced, impasse.Anomalous)
	n, err = testutil.GatherAndCount(reg, "katona_session_impasse_classifications_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOutcome(t *testing.T) {
	m, reg := newMetrics(t)
	m.Outcome("solved")
	m.Outcome("solved")

	n, err := testutil.GatherAndCount(reg, "katona_session_outcomes_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_NilRegistry(t *testing.T) {
	m := metrics.New(metrics.Config{Namespace: "x"})
	assert.NotNil(t, m.Registry())
	assert.NotPanics(t, func() { metrics.New(metrics.Config{Namespace: "x"}) })
}

func TestNew_DuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := metrics.Config{Namespace: "x", Registry: reg}
	metrics.New(cfg)
	assert.Panics(t, func() { metrics.New(cfg) })
}
