// SPDX-License-Identifier: MIT

// Package grid builds the diamond-shaped cell table of a matchstick puzzle
// and addresses its cells.
//
// What:
//
//   - A field of N×N unit squares (N odd, N > 1) contributes four sides per
//     square; coincident sides are merged, leaving 2·(N²+N) distinct cells.
//   - Cells are ordered top-to-bottom, left-to-right and addressed by a
//     centred Index{Row, Col}: Row 0 is the middle (vertical) row, Col 0 the
//     middle column. Rows alternate N horizontal and N+1 vertical cells,
//     starting and ending with a narrow row.
//   - LinearIndexFor maps an Index to its position in the ordered table and
//     is the exact left inverse of the construction ordering.
//
// Why:
//
//   - Puzzle definitions (movable sticks, target positions) are written in
//     Index form and stay valid for any stick length/thickness.
//   - Hit testing (Rect.Contains) and square detection (ClosedSquares)
//     operate on the same geometry the cells were built from.
//
// Complexity:
//
//   - New:            O(N² log N), Memory: O(N²).
//   - LinearIndexFor: O(N).
//   - Lookup:         O(N).
//   - ClosedSquares:  O(N² + P), P = number of occupied points.
//
// Errors:
//
//   - ErrFieldSize:        field size <= 1.
//   - ErrEvenFieldSize:    even field sizes produce a malformed diamond and are refused.
//   - ErrUnitLength:       unit length <= 0.
//   - ErrUnitThickness:    unit thickness < 0.
//   - ErrIndexOutOfRange:  Index does not address any constructed cell.
package grid
