// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/grid"
)

// Verdict is the three-valued result of Evaluate.
type Verdict int

const (
	// Undetermined: the event was not a completed placement.
	Undetermined Verdict = iota
	// Incorrect placement.
	Incorrect
	// Correct placement.
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "undetermined"
	}
}

// Determined reports whether v is Correct or Incorrect.
func (v Verdict) Determined() bool { return v != Undetermined }

// Options configures a Checker.
type Options struct {
	// ResetAfter is the number of evaluations after which the lock and the
	// counter are cleared. Must be >= 1.
	ResetAfter int
}

// DefaultOptions returns ResetAfter=3, one full attempt of the five-square
// problem.
func DefaultOptions() Options {
	return Options{ResetAfter: 3}
}

// Option configures optional Checker collaborators.
type Option func(*Checker)

// WithLogger sets the logger for lock transitions. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("verify: WithLogger(nil)")
	}
	return func(c *Checker) {
		c.log = l
	}
}

type indexSet map[grid.Index]struct{}

func newIndexSet(idx []grid.Index) indexSet {
	s := make(indexSet, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

func (s indexSet) has(i grid.Index) bool {
	_, ok := s[i]
	return ok
}

// Checker is the locking verifier. Not safe for concurrent use.
type Checker struct {
	cat        *Catalogue
	resetAfter int
	log        *zap.Logger

	locked    string
	sticks    indexSet // nil when unlocked
	positions indexSet

	chosen    grid.Index
	hasChosen bool
	counter   int
}

// NewChecker returns an unlocked checker over cat.
func NewChecker(cat *Catalogue, opts Options, options ...Option) (*Checker, error) {
	if cat == nil {
		return nil, ErrNilCatalogue
	}
	if opts.ResetAfter < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrResetAfter, opts.ResetAfter)
	}
	c := &Checker{cat: cat, resetAfter: opts.ResetAfter, log: zap.NewNop()}
	for _, o := range options {
		o(c)
	}
	return c, nil
}

// Evaluate feeds one event and returns the verdict for it. Only StickPlaced
// yields Correct or Incorrect; a Reset event resets the checker.
func (c *Checker) Evaluate(ev event.Event) Verdict {
	switch ev.Kind {
	case event.StickChosen:
		c.choose(ev.Place)
		return Undetermined
	case event.StickPlaced:
		return c.placed(ev.Place)
	case event.Reset:
		c.Reset()
		return Undetermined
	default:
		return Undetermined
	}
}

func (c *Checker) choose(from grid.Index) {
	c.chosen, c.hasChosen = from, true
	if c.sticks != nil {
		return
	}
	for _, p := range c.cat.patterns {
		for _, s := range p.Sticks {
			if s != from {
				continue
			}
			c.locked = p.Name
			c.sticks = newIndexSet(p.Sticks)
			c.positions = newIndexSet(p.Positions)
			c.log.Debug("solution locked", zap.String("solution", p.Name), zap.Stringer("stick", from))
			return
		}
	}
}

func (c *Checker) placed(to grid.Index) Verdict {
	c.counter++
	ok := c.sticks != nil && c.hasChosen && c.sticks.has(c.chosen) && c.positions.has(to)
	c.hasChosen = false

	verdict := Incorrect
	if ok {
		verdict = Correct
	} else if c.sticks != nil {
		c.log.Debug("solution lock discarded", zap.String("solution", c.locked))
		c.clearLock()
	}

	if c.counter >= c.resetAfter {
		c.counter = 0
		c.clearLock()
	}

	return verdict
}

func (c *Checker) clearLock() {
	c.locked, c.sticks, c.positions = "", nil, nil
}

// Reset clears the move in progress, the lock and the counter.
func (c *Checker) Reset() {
	c.hasChosen = false
	c.counter = 0
	c.clearLock()
}

// Locked returns the name of the locked pattern.
func (c *Checker) Locked() (string, bool) {
	return c.locked, c.sticks != nil
}

// Evaluations returns the number of placements since the last reset.
func (c *Checker) Evaluations() int { return c.counter }
