// SPDX-License-Identifier: MIT

// Package session runs one puzzle attempt.
//
// A Session owns the grid, the movable sticks and every per-attempt state
// machine. The host calls Tick once per frame with the pointer state and
// the button clicks of that frame. Within a tick the work runs in a fixed
// order:
//
//  1. time limit
//  2. feedback gate (nothing happens while feedback is on screen)
//  3. mover, frozen once MovesToSolve sticks were relocated
//  4. verifier
//  5. impasse detector, fed the time since the previous event of the same
//     kind
//  6. event log, metrics and hooks
//  7. reset button, honoured only while no stick is held
//  8. impasse button
//
// The verifier must see StickChosen before the matching StickPlaced, which
// this order guarantees.
//
// The attempt is Solved once MovesToSolve placements in a row were judged
// correct. Every placement counts, so a put-back judged incorrect breaks
// the run even though it is not a relocation; a reset clears it. The
// attempt is TimeExpired when the clock passes the time
// limit or the host signals expiry. Both outcomes are final.
package session
