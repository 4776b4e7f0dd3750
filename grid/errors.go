// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrFieldSize indicates a field of one square or less.
	ErrFieldSize = errors.New("grid: field size must be greater than 1")
	// ErrEvenFieldSize indicates an even field size; only odd sizes form a diamond.
	ErrEvenFieldSize = errors.New("grid: field size must be odd")
	// ErrUnitLength indicates a non-positive stick length.
	ErrUnitLength = errors.New("grid: unit length must be positive")
	// ErrUnitThickness indicates a negative stick thickness.
	ErrUnitThickness = errors.New("grid: unit thickness must not be negative")
	// ErrIndexOutOfRange indicates an Index outside the constructed table.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)
