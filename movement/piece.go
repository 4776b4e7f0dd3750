// SPDX-License-Identifier: MIT

package movement

import (
	"fmt"

	"github.com/katalvlaran/katona/grid"
)

// Piece is a movable stick. ID is its position in the movable sequence at
// creation time; Home is the cell it starts on and returns to on Restore.
// Cell is the cell it last rested on.
type Piece struct {
	ID          int
	Home        grid.Index
	Cell        grid.Index
	Position    grid.Point
	Orientation grid.Orientation
}

// NewPieces creates one piece per home cell, in order.
func NewPieces(g *grid.Grid, homes []grid.Index) ([]*Piece, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	seen := make(map[grid.Index]struct{}, len(homes))
	pieces := make([]*Piece, 0, len(homes))
	for i, h := range homes {
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateHome, h)
		}
		seen[h] = struct{}{}
		e, err := g.Lookup(h)
		if err != nil {
			return nil, fmt.Errorf("movement: piece %d: %w", i, err)
		}
		pieces = append(pieces, &Piece{
			ID:          i,
			Home:        h,
			Cell:        h,
			Position:    e.Position,
			Orientation: e.Orientation,
		})
	}

	return pieces, nil
}

// Restore puts every piece back on its home cell with the cell's orientation.
func Restore(g *grid.Grid, pieces []*Piece) error {
	for _, p := range pieces {
		e, err := g.Lookup(p.Home)
		if err != nil {
			return fmt.Errorf("movement: restore piece %d: %w", p.ID, err)
		}
		p.Cell = e.Index
		p.Position = e.Position
		p.Orientation = e.Orientation
	}
	return nil
}

// Positions returns the current positions of pieces, in order.
func Positions(pieces []*Piece) []grid.Point {
	out := make([]grid.Point, len(pieces))
	for i, p := range pieces {
		out[i] = p.Position
	}
	return out
}
