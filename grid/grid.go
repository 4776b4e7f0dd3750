// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"sort"
)

// side is one candidate stick position of a unit square, expressed in
// half-step units so that sides shared by neighbouring squares compare equal.
type side struct {
	hx, hy      int
	orientation Orientation
}

// squareOffsets are the bottom, top, right and left sides of a unit square
// in half-step units.
var squareOffsets = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// squareSides returns the four sides of the unit square centred at (cx, cy)
// (in whole steps). Sides with no x offset are horizontal.
func squareSides(cx, cy int) [4]side {
	var out [4]side
	for i, off := range squareOffsets {
		o := Vertical
		if off[0] == 0 {
			o = Horizontal
		}
		out[i] = side{hx: 2*cx + off[0], hy: 2*cy + off[1], orientation: o}
	}
	return out
}

// New builds the cell table for opts.
// Returns ErrFieldSize, ErrEvenFieldSize, ErrUnitLength or ErrUnitThickness
// for invalid options; no partial grid is ever returned.
// Complexity: O(N² log N) time, O(N²) memory.
func New(opts Options) (*Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := opts.FieldSize
	c := n / 2

	// Collect sides square by square, dropping coincident ones.
	seen := make(map[[2]int]struct{}, Count(n))
	sides := make([]side, 0, Count(n))
	for cy := -c; cy <= c; cy++ {
		for cx := -c; cx <= c; cx++ {
			for _, s := range squareSides(cx, cy) {
				key := [2]int{s.hx, s.hy}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				sides = append(sides, s)
			}
		}
	}

	// Top row first, left to right inside a row.
	sort.Slice(sides, func(i, j int) bool {
		if sides[i].hy != sides[j].hy {
			return sides[i].hy > sides[j].hy
		}
		return sides[i].hx < sides[j].hx
	})

	g := &Grid{
		opts:     opts,
		step:     opts.UnitLength + opts.UnitThickness,
		elements: make([]Element, 0, len(sides)),
		byHalf:   make(map[[2]int]int, len(sides)),
	}
	rowShift, colShift := n+n%2, n/2+1
	row, col := 1, 0
	for _, s := range sides {
		col++
		if col > rowWidth(row, n) {
			row++
			col = 1
		}
		g.byHalf[[2]int{s.hx, s.hy}] = len(g.elements)
		g.elements = append(g.elements, Element{
			Position:    g.halfToPoint(s.hx, s.hy),
			Orientation: s.orientation,
			Index:       Index{Row: row - rowShift, Col: col - colShift},
		})
	}
	if len(g.elements) != Count(n) {
		// Unreachable for odd n; guards the documented element count.
		return nil, fmt.Errorf("grid: built %d elements, want %d", len(g.elements), Count(n))
	}

	return g, nil
}

// Count returns the number of distinct cells of an n×n field: 2·(n²+n).
func Count(n int) int {
	return 2 * (n*n + n)
}

// halfToPoint converts half-step coordinates to layout units.
func (g *Grid) halfToPoint(hx, hy int) Point {
	return Point{X: float64(hx) * g.step / 2, Y: float64(hy) * g.step / 2}
}

// Options returns the construction options.
func (g *Grid) Options() Options { return g.opts }

// FieldSize returns N.
func (g *Grid) FieldSize() int { return g.opts.FieldSize }

// Step returns the distance between neighbouring square centres.
func (g *Grid) Step() float64 { return g.step }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.elements) }

// Elements returns a copy of the ordered cell table.
func (g *Grid) Elements() []Element {
	out := make([]Element, len(g.elements))
	copy(out, g.elements)
	return out
}

// At returns the cell at linear position i.
func (g *Grid) At(i int) (Element, error) {
	if i < 0 || i >= len(g.elements) {
		return Element{}, fmt.Errorf("%w: linear position %d", ErrIndexOutOfRange, i)
	}
	return g.elements[i], nil
}

// Lookup returns the cell addressed by idx.
// Returns ErrIndexOutOfRange if idx addresses no cell.
// Complexity: O(N).
func (g *Grid) Lookup(idx Index) (Element, error) {
	i, err := LinearIndexFor(idx, g.opts.FieldSize)
	if err != nil {
		return Element{}, err
	}
	return g.elements[i], nil
}

// Contains reports whether idx addresses a cell of g.
func (g *Grid) Contains(idx Index) bool {
	_, err := LinearIndexFor(idx, g.opts.FieldSize)
	return err == nil
}

// OuterBorder returns the largest absolute coordinate of any cell plus the
// stick thickness, i.e. the half-size of the square that encloses the grid.
func (g *Grid) OuterBorder() float64 {
	var far float64
	for _, e := range g.elements {
		far = math.Max(far, math.Max(math.Abs(e.Position.X), math.Abs(e.Position.Y)))
	}
	return far + g.opts.UnitThickness
}
