// SPDX-License-Identifier: MIT

// Package eventlog turns the semantic event stream into research log
// entries.
//
// Each event kind maps to a stable column (see Column). A Recorder collects
// the columns of one move into an Entry and hands it to a Sink when the move
// ends (move.end) or the puzzle is reset (reset.problem). Impasse
// classifications of move events land in o.impasse.move.start and
// o.impasse.move.end; a press of the impasse button lands in s.impasse.
// With WithStickColors the colour group of the chosen stick fills
// stick.color, and WithFeedbackType stamps every entry's feedback.type with
// the experiment condition.
package eventlog
