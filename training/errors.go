// SPDX-License-Identifier: MIT

package training

import "errors"

var (
	// ErrNoStages indicates an empty stage list.
	ErrNoStages = errors.New("training: no stages")

	// ErrTarget indicates a target cell outside the grid.
	ErrTarget = errors.New("training: target out of range")

	// ErrNilPredicate indicates a stage without a completion predicate.
	ErrNilPredicate = errors.New("training: nil predicate")
)
