// SPDX-License-Identifier: MIT

// Package event defines the semantic events that flow through a puzzle
// session: a stick was chosen, a stick was placed, the puzzle was restored
// to its default layout, or the impasse button was pressed.
//
// Stick events are produced by the movement package; Reset and
// ImpassePressed come from the session's control surface. All kinds pass
// through the same verification and logging pipeline.
//
// Kind.String returns the stable tag an external logger maps to a column
// ("stick chosen", "stick placed", "default place", "impasse-button pressed").
package event
