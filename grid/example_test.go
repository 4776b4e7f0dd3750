// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/katona/grid"
)

// ExampleGrid_Lookup builds the 3×3 training field and resolves the centre
// cell. With UnitLength=1 and UnitThickness=1 the square centres are 2 apart.
func ExampleGrid_Lookup() {
	g, err := grid.New(grid.Options{FieldSize: 3, UnitLength: 1, UnitThickness: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", g.Len())

	e, _ := g.Lookup(grid.Index{Row: 0, Col: 0})
	fmt.Println(e.Index, e.Position, e.Orientation)

	i, _ := grid.LinearIndexFor(e.Index, g.FieldSize())
	fmt.Println("linear:", i)

	// Output:
	// cells: 24
	// (0,0) {-1 0} 90°
	// linear: 11
}
