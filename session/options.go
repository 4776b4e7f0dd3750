// SPDX-License-Identifier: MIT

package session

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/eventlog"
	"github.com/katalvlaran/katona/feedback"
	"github.com/katalvlaran/katona/impasse"
	"github.com/katalvlaran/katona/metrics"
	"github.com/katalvlaran/katona/verify"
)

// Report describes one semantic event after the pipeline judged it.
type Report struct {
	Event   event.Event
	Verdict verify.Verdict
	Impasse impasse.Classification

	// Interval is the time since the previous event of the same kind, or
	// since the session start for the first one.
	Interval time.Duration

	// Relocated is set when the event moved a stick to a new cell.
	Relocated bool
}

// Hook observes reports. Hooks run synchronously inside Tick.
type Hook func(Report)

// Option configures a Session. Every option panics on a nil argument.
type Option func(*Session)

// WithLogger sets the session logger. The logger is handed down to the
// mover, the verifier and the event log.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.log = l
	}
}

// WithClock sets the time source. The default is a monotonic clock started
// by New.
func WithClock(c clock.Clock) Option {
	if c == nil {
		panic("session: WithClock(nil)")
	}
	return func(s *Session) {
		s.clk = c
	}
}

// WithSink sets where log entries go. The default is an in-memory sink.
func WithSink(k eventlog.Sink) Option {
	if k == nil {
		panic("session: WithSink(nil)")
	}
	return func(s *Session) {
		s.sink = k
	}
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	if m == nil {
		panic("session: WithMetrics(nil)")
	}
	return func(s *Session) {
		s.metrics = m
	}
}

// WithPresenter sets the feedback presenter.
func WithPresenter(p feedback.Presenter) Option {
	if p == nil {
		panic("session: WithPresenter(nil)")
	}
	return func(s *Session) {
		s.presenter = p
	}
}

// WithEventHook adds h to the hooks run for every semantic event.
func WithEventHook(h Hook) Option {
	if h == nil {
		panic("session: WithEventHook(nil)")
	}
	return func(s *Session) {
		s.hooks = append(s.hooks, h)
	}
}

// WithID sets the session id. The default is a random UUID.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}
