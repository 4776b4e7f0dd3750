// SPDX-License-Identifier: MIT

package eventlog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/impasse"
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the recorder logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("eventlog: WithLogger(nil)")
	}
	return func(r *Recorder) {
		r.log = l
	}
}

// WithFeedbackType stamps every written entry with the experiment
// condition label.
func WithFeedbackType(label string) Option {
	return func(r *Recorder) {
		r.feedbackType = label
	}
}

// WithStickColors sets the colour label of each stick ID. The first chosen
// stick of an entry fills its stick.color cell.
func WithStickColors(colors map[int]string) Option {
	return func(r *Recorder) {
		r.colors = colors
	}
}

// Recorder assembles entries from events. Not safe for concurrent use.
type Recorder struct {
	sink         Sink
	log          *zap.Logger
	feedbackType string
	colors       map[int]string
	cur          Entry
	dirty        bool
	seq          int
}

// NewRecorder returns a recorder writing to sink.
func NewRecorder(sink Sink, opts ...Option) (*Recorder, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	r := &Recorder{sink: sink, log: zap.NewNop()}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

func ptr[T any](v T) *T { return &v }

// Record adds ev to the current entry; c is the impasse classification of
// ev (ignored for non-move kinds and when Undetermined). The entry is
// written when ev ends a move or resets the puzzle.
func (r *Recorder) Record(ctx context.Context, ev event.Event, c impasse.Classification) error {
	var flag *bool
	if c != impasse.Undetermined {
		flag = ptr(c == impasse.Anomalous)
	}
	r.dirty = true
	switch ev.Kind {
	case event.StickChosen:
		r.cur.MoveStart = ptr(ev.Time)
		r.cur.ImpasseMoveStart = flag
		r.cur.MoveStartPlace = ptr(ev.Place)
		if ev.HasStick() {
			r.cur.Stick = ptr(ev.Stick)
			if c, ok := r.colors[ev.Stick]; ok && r.cur.StickColor == "" {
				r.cur.StickColor = c
			}
		}
	case event.StickPlaced:
		r.cur.MoveEnd = ptr(ev.Time)
		r.cur.ImpasseMoveEnd = flag
		r.cur.MoveEndPlace = ptr(ev.Place)
		if ev.HasStick() {
			r.cur.Stick = ptr(ev.Stick)
		}
		return r.Flush(ctx)
	case event.Reset:
		r.cur.Reset = ptr(ev.Time)
		return r.Flush(ctx)
	case event.ImpassePressed:
		r.cur.SubjectiveImpasse = ptr(ev.Time)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(ev.Kind))
	}
	return nil
}

// Feedback records whether feedback was shown for the current move.
func (r *Recorder) Feedback(shown bool) {
	r.cur.Feedback = ptr(shown)
	r.dirty = true
}

// RecordFailure writes the terminal entry of a session that ran out of
// time at t.
func (r *Recorder) RecordFailure(ctx context.Context, t time.Duration) error {
	r.cur.MoveEnd = ptr(t)
	r.cur.Failure = true
	r.dirty = true
	return r.Flush(ctx)
}

// Flush writes the current entry if it holds any value.
func (r *Recorder) Flush(ctx context.Context) error {
	if !r.dirty {
		return nil
	}
	e := r.cur
	e.Seq = r.seq
	e.FeedbackType = r.feedbackType
	r.cur, r.dirty = Entry{}, false
	r.seq++
	if err := r.sink.Write(ctx, e); err != nil {
		r.log.Error("log entry lost", zap.Int("seq", e.Seq), zap.Error(err))
		return fmt.Errorf("eventlog: write entry %d: %w", e.Seq, err)
	}
	return nil
}

// Written returns the number of entries handed to the sink.
func (r *Recorder) Written() int { return r.seq }
