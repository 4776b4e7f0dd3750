// SPDX-License-Identifier: MIT

package grid

import "math"

// Rect is an axis-aligned rectangle given by its centre and half-sizes.
type Rect struct {
	Center       Point
	HalfW, HalfH float64
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return math.Abs(p.X-r.Center.X) <= r.HalfW && math.Abs(p.Y-r.Center.Y) <= r.HalfH
}

// Extent returns the visual extent of a stick of this grid placed at pos
// with orientation o: UnitLength along its axis, UnitThickness across it.
func (g *Grid) Extent(pos Point, o Orientation) Rect {
	long, short := g.opts.UnitLength/2, g.opts.UnitThickness/2
	if o == Vertical {
		return Rect{Center: pos, HalfW: short, HalfH: long}
	}
	return Rect{Center: pos, HalfW: long, HalfH: short}
}

// ElementExtent returns the extent of cell e.
func (g *Grid) ElementExtent(e Element) Rect {
	return g.Extent(e.Position, e.Orientation)
}

// ClosedSquares returns the centres of the unit squares whose four sides
// are all occupied, in top-to-bottom, left-to-right order.
// Occupied points are matched exactly against cell positions, so sticks
// must have been snapped onto cells.
// Complexity: O(N² + P).
func (g *Grid) ClosedSquares(occupied []Point) []Point {
	taken := make(map[Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	c := g.opts.FieldSize / 2
	var out []Point
	for cy := c; cy >= -c; cy-- {
		for cx := -c; cx <= c; cx++ {
			closed := true
			for _, s := range squareSides(cx, cy) {
				if _, ok := taken[g.halfToPoint(s.hx, s.hy)]; !ok {
					closed = false
					break
				}
			}
			if closed {
				out = append(out, g.halfToPoint(2*cx, 2*cy))
			}
		}
	}

	return out
}

// CellAt returns the cell whose position equals p exactly.
// Complexity: O(1).
func (g *Grid) CellAt(p Point) (Element, bool) {
	hx := int(math.Round(2 * p.X / g.step))
	hy := int(math.Round(2 * p.Y / g.step))
	i, ok := g.byHalf[[2]int{hx, hy}]
	if !ok || g.elements[i].Position != p {
		return Element{}, false
	}
	return g.elements[i], true
}
