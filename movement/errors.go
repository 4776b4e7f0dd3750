// SPDX-License-Identifier: MIT

package movement

import "errors"

var (
	// ErrNilGrid is returned when a nil grid is passed to a constructor.
	ErrNilGrid = errors.New("movement: nil grid")

	// ErrNilClock is returned when NewMover is called without a clock.
	ErrNilClock = errors.New("movement: nil clock")

	// ErrDuplicateHome indicates two pieces share a home cell.
	ErrDuplicateHome = errors.New("movement: duplicate home cell")
)
