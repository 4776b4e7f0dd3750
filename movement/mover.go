// SPDX-License-Identifier: MIT

package movement

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/grid"
)

// State of a Mover.
type State int

const (
	// Idle: no piece is held.
	Idle State = iota
	// Holding: a piece follows the pointer.
	Holding
)

func (s State) String() string {
	if s == Holding {
		return "holding"
	}
	return "idle"
}

// Pointer is the raw pointer state sampled once per tick.
// Wheel is the scroll delta since the previous tick; any non-zero value is
// one rotation step.
type Pointer struct {
	Position grid.Point
	Pressed  bool
	Wheel    int
}

// Option configures a Mover.
type Option func(*Mover)

// WithLogger sets the logger used for per-tick transitions. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("movement: WithLogger(nil)")
	}
	return func(m *Mover) {
		m.log = l
	}
}

// Mover is the pick/place state machine. It is not safe for concurrent use;
// call OnTick from the loop that owns the pieces.
type Mover struct {
	g   *grid.Grid
	clk clock.Clock
	log *zap.Logger

	pressed bool // button state seen on the previous tick
	held    *Piece
	origin  grid.Index

	last     event.Event
	pending  bool
	moveMade bool
}

// NewMover returns an Idle mover that hit-tests against g and timestamps
// events with clk. The button starts released.
func NewMover(g *grid.Grid, clk clock.Clock, opts ...Option) (*Mover, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if clk == nil {
		return nil, ErrNilClock
	}
	m := &Mover{g: g, clk: clk, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// State returns Idle or Holding.
func (m *Mover) State() State {
	if m.held != nil {
		return Holding
	}
	return Idle
}

// Held returns the held piece, if any.
func (m *Mover) Held() (*Piece, bool) {
	return m.held, m.held != nil
}

// OnTick advances the machine by one tick. pieces are the movable sticks,
// fixed the cells they may rest on (normally Grid.Elements()).
func (m *Mover) OnTick(p Pointer, pieces []*Piece, fixed []grid.Element) {
	edge := p.Pressed && !m.pressed
	m.pressed = p.Pressed

	if edge {
		if m.held == nil {
			m.choose(p.Position, pieces, fixed)
		} else {
			m.place(p.Position, pieces, fixed)
		}
	}

	if m.held != nil {
		m.held.Position = p.Position
		if p.Wheel != 0 {
			m.held.Orientation = m.held.Orientation.Toggle()
			m.log.Debug("stick rotated",
				zap.Int("stick", m.held.ID),
				zap.Stringer("orientation", m.held.Orientation))
		}
	}
}

func (m *Mover) choose(at grid.Point, pieces []*Piece, fixed []grid.Element) {
	for _, pc := range pieces {
		if !m.g.Extent(pc.Position, pc.Orientation).Contains(at) {
			continue
		}
		m.held = pc
		m.origin = m.originCell(at, pc, fixed)
		m.emit(event.StickChosen, pc.ID, m.origin)
		m.log.Debug("stick chosen",
			zap.Int("stick", pc.ID),
			zap.Stringer("from", m.origin))
		return
	}
}

// originCell resolves the cell a piece is taken from: the fixed cell under
// the pointer, preferring the one the piece rests on.
func (m *Mover) originCell(at grid.Point, pc *Piece, fixed []grid.Element) grid.Index {
	var (
		first grid.Index
		found bool
	)
	for _, e := range fixed {
		if !m.g.ElementExtent(e).Contains(at) {
			continue
		}
		if e.Position == pc.Position {
			return e.Index
		}
		if !found {
			first, found = e.Index, true
		}
	}
	if found {
		return first
	}
	return pc.Cell
}

func (m *Mover) place(at grid.Point, pieces []*Piece, fixed []grid.Element) {
	pc := m.held
	for _, e := range fixed {
		if e.Orientation != pc.Orientation || !m.g.ElementExtent(e).Contains(at) {
			continue
		}
		if m.occupied(e.Position, pieces) {
			m.log.Debug("placement rejected: cell occupied",
				zap.Int("stick", pc.ID),
				zap.Stringer("cell", e.Index))
			continue
		}
		pc.Position = e.Position
		pc.Cell = e.Index
		m.emit(event.StickPlaced, pc.ID, e.Index)
		if e.Index != m.origin {
			m.moveMade = true
		}
		m.log.Debug("stick placed",
			zap.Int("stick", pc.ID),
			zap.Stringer("from", m.origin),
			zap.Stringer("to", e.Index))
		m.held = nil
		return
	}
}

func (m *Mover) occupied(pos grid.Point, pieces []*Piece) bool {
	for _, pc := range pieces {
		if pc != m.held && pc.Position == pos {
			return true
		}
	}
	return false
}

func (m *Mover) emit(k event.Kind, stick int, place grid.Index) {
	m.last = event.Event{Kind: k, Stick: stick, Place: place, Time: m.clk.Now()}
	m.pending = true
}

// Release drops the held piece without emitting an event. It is a no-op
// when Idle. The piece keeps its current position.
func (m *Mover) Release() {
	if m.held != nil {
		m.log.Debug("stick released", zap.Int("stick", m.held.ID))
	}
	m.held = nil
}

// LastEvent returns and clears the outstanding event.
func (m *Mover) LastEvent() (event.Event, bool) {
	if !m.pending {
		return event.Event{}, false
	}
	ev := m.last
	m.last, m.pending = event.Event{}, false
	return ev, true
}

// MoveMade reports, once, whether the last placement moved a stick to a
// cell other than the one it was taken from.
func (m *Mover) MoveMade() bool {
	made := m.moveMade
	m.moveMade = false
	return made
}
