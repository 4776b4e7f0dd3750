// SPDX-License-Identifier: MIT

package feedback

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/katona/clock"
)

// Kind selects a Sink variant.
type Kind string

const (
	None     Kind = "none"
	Positive Kind = "positive"
	Negative Kind = "negative"
	Phrases  Kind = "phrases"
)

// Sink receives the verdict of every completed move.
type Sink interface {
	// OnEvent reports a verdict.
	OnEvent(correct bool)
	// InProgress reports whether blocking feedback is being shown.
	InProgress() bool
	// NewEvent reports, once, that feedback was shown since the last call.
	NewEvent() bool
	// ResetTime restarts the sink's timers at session start.
	ResetTime()
}

// Presenter renders feedback. content is "positive", "negative" or a phrase.
type Presenter interface {
	Show(content string)
	Hide()
}

// NopPresenter discards everything.
type NopPresenter struct{}

func (NopPresenter) Show(string) {}
func (NopPresenter) Hide()       {}

// Options configures New.
type Options struct {
	Kind Kind
	// Duration is how long Positive/Negative feedback is shown.
	Duration time.Duration
	// Phrases is the rotation used by the Phrases kind.
	Phrases []string
	// PhraseShowTime is how long a phrase stays on screen.
	PhraseShowTime time.Duration
	// PhraseGap is the minimum time between two phrases.
	PhraseGap time.Duration
	// Seed drives the phrase shuffle.
	Seed int64
}

// DefaultOptions returns a None sink with the timings used by the other
// kinds: 1s feedback, phrases shown 10s at most once a minute.
func DefaultOptions() Options {
	return Options{
		Kind:           None,
		Duration:       time.Second,
		PhraseShowTime: 10 * time.Second,
		PhraseGap:      time.Minute,
	}
}

// Validate reports the first configuration error in o.
func (o Options) Validate() error {
	switch o.Kind {
	case None, "":
		return nil
	case Positive, Negative:
		if o.Duration <= 0 {
			return fmt.Errorf("%w: duration %s", ErrDuration, o.Duration)
		}
		return nil
	case Phrases:
		if len(o.Phrases) == 0 {
			return ErrNoPhrases
		}
		if o.PhraseShowTime <= 0 {
			return fmt.Errorf("%w: phrase show time %s", ErrDuration, o.PhraseShowTime)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, o.Kind)
	}
}

// New builds the sink selected by opts.Kind. A nil presenter is replaced by
// NopPresenter.
func New(opts Options, clk clock.Clock, p Presenter) (Sink, error) {
	if clk == nil {
		return nil, ErrNilClock
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		p = NopPresenter{}
	}
	switch opts.Kind {
	case Positive, Negative:
		return &Timed{on: opts.Kind == Positive, label: string(opts.Kind), d: opts.Duration, clk: clk, p: p}, nil
	case Phrases:
		return &Rotation{
			all:  append([]string(nil), opts.Phrases...),
			show: opts.PhraseShowTime,
			gap:  opts.PhraseGap,
			rng:  rand.New(rand.NewSource(opts.Seed)),
			clk:  clk,
			p:    p,
		}, nil
	default:
		return Nop{}, nil
	}
}

// Nop is the None variant.
type Nop struct{}

func (Nop) OnEvent(bool)     {}
func (Nop) InProgress() bool { return false }
func (Nop) NewEvent() bool   { return false }
func (Nop) ResetTime()       {}

// Timed shows blocking feedback for a fixed time on verdicts equal to on.
type Timed struct {
	on    bool
	label string
	d     time.Duration
	clk   clock.Clock
	p     Presenter

	until   time.Duration
	showing bool
	fresh   bool
	shown   int
}

// OnEvent starts the feedback when correct matches the variant and nothing
// is being shown.
func (t *Timed) OnEvent(correct bool) {
	if correct != t.on || t.InProgress() {
		return
	}
	t.until = t.clk.Now() + t.d
	t.showing, t.fresh = true, true
	t.shown++
	t.p.Show(t.label)
}

// InProgress reports whether the feedback is still shown, hiding it once
// its time is up.
func (t *Timed) InProgress() bool {
	if !t.showing {
		return false
	}
	if t.clk.Now() < t.until {
		return true
	}
	t.showing = false
	t.p.Hide()
	return false
}

// NewEvent reports, once, that feedback was started.
func (t *Timed) NewEvent() bool {
	f := t.fresh
	t.fresh = false
	return f
}

// ResetTime is a no-op: timed feedback has no pending timers between moves.
func (t *Timed) ResetTime() {}

// Shown returns how many times feedback was started.
func (t *Timed) Shown() int { return t.shown }

// Rotation is the Phrases variant.
type Rotation struct {
	all  []string
	deck []string
	show time.Duration
	gap  time.Duration
	rng  *rand.Rand
	clk  clock.Clock
	p    Presenter

	next    time.Duration // earliest time of the next phrase
	until   time.Duration
	showing bool
	fresh   bool
	shown   int
}

// OnEvent shows the next phrase if the gap since the previous one elapsed.
// The verdict itself is ignored.
func (r *Rotation) OnEvent(bool) {
	now := r.clk.Now()
	if now < r.next {
		return
	}
	r.next = now + r.gap
	if len(r.deck) == 0 {
		r.deck = append(r.deck[:0], r.all...)
		r.rng.Shuffle(len(r.deck), func(i, j int) { r.deck[i], r.deck[j] = r.deck[j], r.deck[i] })
	}
	phrase := r.deck[len(r.deck)-1]
	r.deck = r.deck[:len(r.deck)-1]

	r.until = now + r.show
	r.showing, r.fresh = true, true
	r.shown++
	r.p.Show(phrase)
}

// InProgress hides an expired phrase and always returns false.
func (r *Rotation) InProgress() bool {
	if r.showing && r.clk.Now() >= r.until {
		r.showing = false
		r.p.Hide()
	}
	return false
}

// NewEvent reports, once, that a phrase was shown.
func (r *Rotation) NewEvent() bool {
	f := r.fresh
	r.fresh = false
	return f
}

// ResetTime allows a phrase on the next event.
func (r *Rotation) ResetTime() { r.next = r.clk.Now() }

// Shown returns how many phrases were shown.
func (r *Rotation) Shown() int { return r.shown }
