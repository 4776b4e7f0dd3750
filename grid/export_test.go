// SPDX-License-Identifier: MIT

package grid

// SquareSidePoints exposes the four sides of the unit square centred at
// (cx, cy) for white-box tests, as positions and orientations.
func (g *Grid) SquareSidePoints(cx, cy int) ([4]Point, [4]Orientation) {
	var pts [4]Point
	var oris [4]Orientation
	for i, s := range squareSides(cx, cy) {
		pts[i] = g.halfToPoint(s.hx, s.hy)
		oris[i] = s.orientation
	}
	return pts, oris
}
