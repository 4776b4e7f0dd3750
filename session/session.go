// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/config"
	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/eventlog"
	"github.com/katalvlaran/katona/feedback"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/impasse"
	"github.com/katalvlaran/katona/metrics"
	"github.com/katalvlaran/katona/movement"
	"github.com/katalvlaran/katona/verify"
)

// Input is the host state of one frame. ResetPressed and ImpassePressed
// report clicks on the two buttons during the frame; TimeExpired is the
// host's own time-limit signal.
type Input struct {
	Pointer        movement.Pointer
	ResetPressed   bool
	ImpassePressed bool
	TimeExpired    bool
}

// Session is one puzzle attempt. Not safe for concurrent use.
type Session struct {
	id  uuid.UUID
	cfg config.Experiment

	g      *grid.Grid
	cells  []grid.Element
	pieces []*movement.Piece

	mover    *movement.Mover
	checker  *verify.Checker
	detector *impasse.Detector[event.Kind]
	fb       feedback.Sink
	phrases  bool
	rec      *eventlog.Recorder

	clk       clock.Clock
	log       *zap.Logger
	sink      eventlog.Sink
	metrics   *metrics.Metrics
	presenter feedback.Presenter
	hooks     []Hook

	start   time.Duration
	last    map[event.Kind]time.Duration
	moves   int
	streak  int
	outcome Outcome
}

// New validates cfg and builds a session ready for its first tick. The
// session clock starts now.
func New(cfg config.Experiment, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		id:        uuid.New(),
		cfg:       cfg,
		log:       zap.NewNop(),
		presenter: feedback.NopPresenter{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.clk == nil {
		s.clk = clock.NewMonotonic()
	}
	if s.sink == nil {
		s.sink = &eventlog.MemorySink{}
	}
	if s.metrics == nil {
		s.metrics = metrics.New(metrics.Config{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		})
	}
	s.log = s.log.With(zap.Stringer("session", s.id))

	var err error
	if s.g, err = grid.New(cfg.Grid.Options()); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.cells = s.g.Elements()
	if s.pieces, err = movement.NewPieces(s.g, cfg.Movable); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if s.mover, err = movement.NewMover(s.g, s.clk, movement.WithLogger(s.log)); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.checker, err = verify.NewChecker(cfg.Solutions,
		verify.Options{ResetAfter: cfg.Verifier.ResetAfter},
		verify.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.detector, err = impasse.NewDetector[event.Kind](impasse.Options{
		MinSamples:       cfg.Impasse.MinSamples,
		ExcludeAnomalies: cfg.Impasse.ExcludeAnomalies,
	})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	fo := cfg.Feedback.Options()
	if s.fb, err = feedback.New(fo, s.clk, s.presenter); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.phrases = fo.Kind == feedback.Phrases
	s.rec, err = eventlog.NewRecorder(s.sink,
		eventlog.WithLogger(s.log),
		eventlog.WithFeedbackType(cfg.Feedback.Label()),
		eventlog.WithStickColors(cfg.Colors.Assign()))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.start = s.clk.Now()
	s.last = make(map[event.Kind]time.Duration, 4)
	s.fb.ResetTime()
	s.log.Info("session started",
		zap.Int("field_size", cfg.Grid.FieldSize),
		zap.Int("sticks", len(s.pieces)),
		zap.Int("solutions", cfg.Solutions.Len()),
		zap.String("feedback", cfg.Feedback.Kind))
	return s, nil
}

// Tick runs one frame. It returns ErrFinished once the outcome is final.
func (s *Session) Tick(ctx context.Context, in Input) (Outcome, error) {
	if s.outcome.Final() {
		return s.outcome, ErrFinished
	}
	if err := ctx.Err(); err != nil {
		return s.outcome, err
	}

	now := s.clk.Now()
	if in.TimeExpired || now-s.start >= s.cfg.Session.TimeLimit {
		err := s.rec.RecordFailure(ctx, now)
		s.finish(TimeExpired)
		return s.outcome, err
	}
	if s.fb.InProgress() {
		return s.outcome, nil
	}

	if s.moves < s.cfg.Session.MovesToSolve {
		s.mover.OnTick(in.Pointer, s.pieces, s.cells)
	}

	correct := false
	if ev, ok := s.mover.LastEvent(); ok {
		verdict := s.checker.Evaluate(ev)
		correct = verdict == verify.Correct
		relocated := s.mover.MoveMade()
		if s.phrases {
			s.fb.OnEvent(correct)
		}
		switch verdict {
		case verify.Correct:
			s.streak++
		case verify.Incorrect:
			s.streak = 0
		}
		if relocated {
			s.moves++
			if !s.phrases {
				s.fb.OnEvent(correct)
			}
			s.rec.Feedback(s.fb.NewEvent())
		}
		if err := s.emit(ctx, ev, verdict, relocated); err != nil {
			return s.outcome, err
		}
		if s.streak >= s.cfg.Session.MovesToSolve {
			s.finish(Solved)
			return s.outcome, nil
		}
	} else if s.phrases {
		s.fb.OnEvent(false)
	}

	if in.ResetPressed {
		if _, holding := s.mover.Held(); !holding {
			if err := s.reset(ctx, now); err != nil {
				return s.outcome, err
			}
		}
	}
	if in.ImpassePressed && !s.phrases {
		if err := s.emit(ctx, event.New(event.ImpassePressed, now), verify.Undetermined, false); err != nil {
			return s.outcome, err
		}
	}
	return s.outcome, nil
}

func (s *Session) reset(ctx context.Context, now time.Duration) error {
	s.mover.Release()
	if err := movement.Restore(s.g, s.pieces); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.checker.Reset()
	s.moves, s.streak = 0, 0
	return s.emit(ctx, event.New(event.Reset, now), verify.Undetermined, false)
}

// emit classifies ev against the time since the previous event of the same
// kind (the session start for the first one) and hands it to the log, the
// metrics and the hooks.
func (s *Session) emit(ctx context.Context, ev event.Event, v verify.Verdict, relocated bool) error {
	prev, ok := s.last[ev.Kind]
	if !ok {
		prev = s.start
	}
	interval := ev.Time - prev
	s.last[ev.Kind] = ev.Time

	class := impasse.Undetermined
	if ev.Kind.IsMove() {
		class = s.detector.Record(ev.Kind, interval.Seconds())
	}
	s.metrics.Event(ev.Kind, interval.Seconds())
	s.metrics.Verdict(v)
	if ev.Kind.IsMove() {
		s.metrics.Impasse(ev.Kind, class)
	}

	s.log.Debug("event",
		zap.Stringer("kind", ev.Kind),
		zap.Int("stick", ev.Stick),
		zap.Stringer("place", ev.Place),
		zap.Duration("at", ev.Time),
		zap.Duration("interval", interval),
		zap.Stringer("verdict", v),
		zap.Stringer("impasse", class))

	err := s.rec.Record(ctx, ev, class)
	r := Report{Event: ev, Verdict: v, Impasse: class, Interval: interval, Relocated: relocated}
	for _, h := range s.hooks {
		h(r)
	}
	return err
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.metrics.Outcome(o.String())
	s.log.Info("session finished",
		zap.Stringer("outcome", o),
		zap.Duration("elapsed", s.clk.Now()-s.start),
		zap.Int("moves", s.moves),
		zap.Int("streak", s.streak))
}

// Flush writes any partially assembled log entry. Call it when the host
// abandons the session.
func (s *Session) Flush(ctx context.Context) error { return s.rec.Flush(ctx) }

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Grid returns the puzzle grid.
func (s *Session) Grid() *grid.Grid { return s.g }

// Pieces returns the movable sticks. Callers must treat them as read-only.
func (s *Session) Pieces() []*movement.Piece { return s.pieces }

// Held returns the stick being dragged, if any.
func (s *Session) Held() (*movement.Piece, bool) { return s.mover.Held() }

// Moves returns the number of relocations since the last reset.
func (s *Session) Moves() int { return s.moves }

// Streak returns the number of consecutive placements judged correct since
// the last incorrect one or the last reset. A put-back judged incorrect
// breaks the streak even though it is not a move.
func (s *Session) Streak() int { return s.streak }

// Frozen reports whether the mover ignores the pointer until a reset.
func (s *Session) Frozen() bool { return s.moves >= s.cfg.Session.MovesToSolve }

// Impasse returns a snapshot of the detector state.
func (s *Session) Impasse() impasse.Snapshot[event.Kind] { return s.detector.Snapshot() }

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration { return s.clk.Now() - s.start }
