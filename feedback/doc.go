// SPDX-License-Identifier: MIT

// Package feedback reacts to move verdicts with participant-facing feedback.
//
// Every variant implements Sink and is picked once, at setup, by New:
//
//   - None: never shows anything.
//   - Positive / Negative: on a correct (resp. incorrect) verdict, show the
//     feedback for Options.Duration. While it is shown InProgress is true and
//     the session stops processing moves.
//   - Phrases: on any verdict, at most once per Options.PhraseGap, show the
//     next phrase of a shuffled rotation for Options.PhraseShowTime. Phrases
//     never block the puzzle.
//
// Rendering is delegated to a Presenter; the package itself only decides
// when to show and hide.
package feedback
