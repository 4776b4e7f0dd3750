// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Orientation is the rotation of a cell or stick in degrees. Only the two
// values below are valid.
type Orientation int

const (
	// Horizontal sticks lie along the x axis (0°).
	Horizontal Orientation = 0
	// Vertical sticks lie along the y axis (90°).
	Vertical Orientation = 90
)

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	return fmt.Sprintf("%d°", int(o))
}

// Point is a 2D position in layout units.
type Point struct {
	X, Y float64
}

// Index is the stable logical address of a cell, centred on the middle of
// the diamond.
type Index struct {
	Row, Col int
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Col)
}

// Element is one constructed cell. Elements are immutable once built.
type Element struct {
	Position    Point
	Orientation Orientation
	Index       Index
}

// Options configures grid construction.
type Options struct {
	// FieldSize is the number of unit squares along each side. Must be odd and > 1.
	FieldSize int
	// UnitLength is the stick length.
	UnitLength float64
	// UnitThickness is the stick thickness; the gap between square centres is
	// UnitLength + UnitThickness.
	UnitThickness float64
}

// DefaultOptions returns the layout used for the five-square problem:
// FieldSize=9, UnitLength=40, UnitThickness=15.
func DefaultOptions() Options {
	return Options{
		FieldSize:     9,
		UnitLength:    40,
		UnitThickness: 15,
	}
}

// Validate reports the first configuration error in o, if any.
func (o Options) Validate() error {
	if err := validateFieldSize(o.FieldSize); err != nil {
		return err
	}
	if o.UnitLength <= 0 {
		return fmt.Errorf("%w: got %v", ErrUnitLength, o.UnitLength)
	}
	if o.UnitThickness < 0 {
		return fmt.Errorf("%w: got %v", ErrUnitThickness, o.UnitThickness)
	}
	return nil
}

func validateFieldSize(n int) error {
	if n <= 1 {
		return fmt.Errorf("%w: got %d", ErrFieldSize, n)
	}
	if n%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenFieldSize, n)
	}
	return nil
}

// Grid is the ordered, deduplicated cell table. It is immutable once built
// and safe for concurrent reads.
type Grid struct {
	opts     Options
	step     float64
	elements []Element
	// byHalf maps a cell position in half-step units to its linear position.
	byHalf map[[2]int]int
}
