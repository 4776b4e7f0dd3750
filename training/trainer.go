// SPDX-License-Identifier: MIT

package training

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/movement"
)

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the trainer logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("training: WithLogger(nil)")
	}
	return func(t *Trainer) {
		t.log = l
	}
}

// Trainer sequences the tutorial stages. Not safe for concurrent use.
type Trainer struct {
	g      *grid.Grid
	cells  []grid.Element
	mover  *movement.Mover
	stages []Stage
	log    *zap.Logger

	idx      int
	homes    []grid.Index
	pieces   []*movement.Piece
	finished bool
}

// Validate checks that stages is non-empty, that every stage has a
// predicate and that its sticks and targets exist in g.
func Validate(g *grid.Grid, stages []Stage) error {
	if len(stages) == 0 {
		return ErrNoStages
	}
	for i, s := range stages {
		if s.Done == nil {
			return fmt.Errorf("%w: stage %d", ErrNilPredicate, i)
		}
		for _, target := range s.Targets {
			if target < 0 || target >= g.Len() {
				return fmt.Errorf("%w: stage %d target %d", ErrTarget, i, target)
			}
		}
		for _, h := range s.Add {
			if !g.Contains(h) {
				return fmt.Errorf("training: stage %d: %w: %v", i, grid.ErrIndexOutOfRange, h)
			}
		}
	}
	return nil
}

// NewTrainer validates stages against g and enters the first stage.
func NewTrainer(g *grid.Grid, clk clock.Clock, stages []Stage, opts ...Option) (*Trainer, error) {
	if g == nil {
		return nil, movement.ErrNilGrid
	}
	if err := Validate(g, stages); err != nil {
		return nil, err
	}

	t := &Trainer{g: g, cells: g.Elements(), stages: stages, log: zap.NewNop()}
	for _, o := range opts {
		o(t)
	}
	m, err := movement.NewMover(g, clk, movement.WithLogger(t.log))
	if err != nil {
		return nil, err
	}
	t.mover = m
	if err := t.enter(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trainer) enter() error {
	t.homes = append(t.homes, t.stages[t.idx].Add...)
	pieces, err := movement.NewPieces(t.g, t.homes)
	if err != nil {
		return fmt.Errorf("training: stage %d: %w", t.idx, err)
	}
	t.pieces = pieces
	t.mover.Release()
	t.log.Debug("training stage entered",
		zap.Int("stage", t.idx),
		zap.String("instruction", t.stages[t.idx].Instruction),
		zap.Int("sticks", len(pieces)))
	return nil
}

// Tick runs the mover for one tick and advances when the current stage is
// complete. It reports whether the stage changed.
func (t *Trainer) Tick(p movement.Pointer, button bool) (bool, error) {
	if t.finished {
		return false, nil
	}
	t.mover.OnTick(p, t.pieces, t.cells)
	// Tutorial moves are not graded.
	t.mover.LastEvent()
	t.mover.MoveMade()

	held, _ := t.mover.Held()
	if !t.stages[t.idx].Done(State{Pieces: t.pieces, Cells: t.cells, Held: held, Button: button}) {
		return false, nil
	}
	return true, t.Advance()
}

// Advance leaves the current stage. After the last stage the trainer is
// finished and holds no sticks.
func (t *Trainer) Advance() error {
	if t.finished {
		return nil
	}
	t.idx++
	if t.idx >= len(t.stages) {
		t.finished = true
		t.pieces = nil
		t.mover.Release()
		t.log.Info("training finished")
		return nil
	}
	return t.enter()
}

// Finished reports whether every stage is complete.
func (t *Trainer) Finished() bool { return t.finished }

// Stage returns the current stage and its index. After the tutorial it
// returns the zero Stage and len(stages).
func (t *Trainer) Stage() (Stage, int) {
	if t.finished {
		return Stage{}, t.idx
	}
	return t.stages[t.idx], t.idx
}

// Pieces returns the sticks of the current stage.
func (t *Trainer) Pieces() []*movement.Piece { return t.pieces }

// Targets returns the cells marked in the current stage.
func (t *Trainer) Targets() []grid.Element {
	s, _ := t.Stage()
	out := make([]grid.Element, 0, len(s.Targets))
	for _, i := range s.Targets {
		out = append(out, t.cells[i])
	}
	return out
}
