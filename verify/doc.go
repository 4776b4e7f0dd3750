// SPDX-License-Identifier: MIT

// Package verify judges completed moves against a catalogue of named target
// configurations.
//
// A Pattern names the sticks that must be moved and the cells they must
// land on. The Checker is a locking state machine over the event stream:
//
//   - StickChosen records the cell the stick was taken from and, when no
//     pattern is locked, locks the first catalogue pattern whose sticks
//     contain that cell. Catalogue order breaks ties.
//   - StickPlaced counts one evaluation. The move is Correct only if a
//     pattern is locked, the chosen stick belongs to it and the destination
//     is one of its positions. Any Incorrect verdict discards the lock so
//     the next move may start another pattern.
//   - After ResetAfter evaluations the lock and counter are cleared
//     regardless of the verdict. A Reset event clears them immediately.
//
// Once a move matched a pattern, later moves are graded against that same
// pattern only, which keeps a participant from collecting credit across
// different end states.
//
// Catalogues are loaded from YAML mappings whose document order is kept:
//
//	left:
//	  sticks:    [[0, 0], [-1, -1], [1, -1]]
//	  positions: [[0, -2], [-1, -2], [1, -2]]
//
// Errors:
//
//   - ErrEmptyPattern, ErrDuplicatePattern: malformed catalogue.
//   - ErrUnknownIndex: a pattern refers to a cell missing from the grid.
//   - ErrResetAfter, ErrNilCatalogue: invalid checker configuration.
package verify
