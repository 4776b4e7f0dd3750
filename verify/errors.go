// SPDX-License-Identifier: MIT

package verify

import "errors"

var (
	// ErrEmptyPattern indicates a pattern without a name, sticks or positions.
	ErrEmptyPattern = errors.New("verify: empty pattern")

	// ErrDuplicatePattern indicates two patterns share a name.
	ErrDuplicatePattern = errors.New("verify: duplicate pattern name")

	// ErrUnknownIndex indicates a pattern index that the grid does not contain.
	ErrUnknownIndex = errors.New("verify: index not in grid")

	// ErrResetAfter indicates Options.ResetAfter < 1.
	ErrResetAfter = errors.New("verify: reset-after must be >= 1")

	// ErrNilCatalogue is returned by NewChecker for a nil catalogue.
	ErrNilCatalogue = errors.New("verify: nil catalogue")
)
