// SPDX-License-Identifier: MIT

// Package movement turns raw pointer state into semantic stick events.
//
// What:
//
//   - Piece is a movable stick resting on (or dragged between) grid cells.
//   - Mover is a two-state machine, Idle ⇄ Holding, driven once per tick by
//     OnTick. Only a rising edge of the primary button triggers a transition.
//   - Idle + edge over a piece: the piece is held and StickChosen is emitted
//     with the cell it was taken from.
//   - Holding + edge over a free cell of the held orientation: the piece snaps
//     onto the cell and StickPlaced is emitted. A placement onto a cell that
//     another piece already occupies is silently rejected.
//   - While holding, the piece follows the pointer and a wheel step toggles
//     its orientation.
//
// Invariants:
//
//   - No two pieces ever rest at the same position.
//   - At most one event is outstanding; LastEvent consumes it.
//
// Errors:
//
//   - ErrNilGrid, ErrNilClock: NewMover called without collaborators.
//   - ErrDuplicateHome: two pieces would start on the same cell.
//   - grid.ErrIndexOutOfRange: a home index is not part of the grid.
package movement
