// SPDX-License-Identifier: MIT

package training

import (
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/movement"
)

// State is what a completion predicate sees after a tick.
type State struct {
	Pieces []*movement.Piece
	Cells  []grid.Element
	// Held is the piece following the pointer, if any. It rests nowhere.
	Held *movement.Piece
	// Button reports a click on the tutorial button during this tick.
	Button bool
}

// Predicate reports whether a stage is complete.
type Predicate func(State) bool

// Stage describes one tutorial step.
type Stage struct {
	// Add are the home cells of sticks added when the stage starts.
	Add []grid.Index
	// Targets are linear cell positions marked for the participant.
	Targets []int
	// Instruction is the key of the text shown during the stage.
	Instruction string
	Done        Predicate
}

// PieceOn holds when piece rests (is not held) on the cell at linear position target.
func PieceOn(piece, target int) Predicate {
	return func(s State) bool {
		if piece >= len(s.Pieces) || target >= len(s.Cells) || s.Pieces[piece] == s.Held {
			return false
		}
		return s.Pieces[piece].Position == s.Cells[target].Position
	}
}

// PiecesWithin holds when every listed piece rests on one of targets.
func PiecesWithin(pieces, targets []int) Predicate {
	return func(s State) bool {
		want := make(map[grid.Point]struct{}, len(targets))
		for _, t := range targets {
			if t >= len(s.Cells) {
				return false
			}
			want[s.Cells[t].Position] = struct{}{}
		}
		for _, p := range pieces {
			if p >= len(s.Pieces) || s.Pieces[p] == s.Held {
				return false
			}
			if _, ok := want[s.Pieces[p].Position]; !ok {
				return false
			}
		}
		return true
	}
}

// ButtonPressed holds on the tick the tutorial button is clicked.
func ButtonPressed(s State) bool { return s.Button }

// DefaultStages returns the tutorial for a 5×5 training field.
func DefaultStages() []Stage {
	return []Stage{
		{
			Add:         []grid.Index{{Row: 0, Col: -1}},
			Targets:     []int{7},
			Instruction: "training.place",
			Done:        PieceOn(0, 7),
		},
		{
			Add:         []grid.Index{{Row: 0, Col: 0}},
			Targets:     []int{1, 15},
			Instruction: "training.rotate",
			Done:        PiecesWithin([]int{0, 1}, []int{1, 15}),
		},
		{
			Add:         []grid.Index{{Row: 0, Col: 1}, {Row: 0, Col: 2}},
			Instruction: "training.button",
			Done:        ButtonPressed,
		},
	}
}
