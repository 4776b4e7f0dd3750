// SPDX-License-Identifier: MIT

package grid

import "fmt"

// rowWidth returns the number of cells in the 1-based absolute row r of an
// n×n field: odd rows hold n horizontal cells, even rows n+1 vertical ones.
func rowWidth(r, n int) int {
	if r%2 == 1 {
		return n
	}
	return n + 1
}

// LinearIndexFor returns the position of idx in the ordered cell table of an
// n×n field.
//
// The centred index is shifted to absolute 1-based coordinates
// (row + n + n%2, col + n/2 + 1); the widths of all preceding rows are then
// accumulated following the alternating n, n+1 pattern.
//
// Returns ErrFieldSize/ErrEvenFieldSize for invalid n and ErrIndexOutOfRange
// when idx lies outside the table.
// Complexity: O(n).
func LinearIndexFor(idx Index, n int) (int, error) {
	if err := validateFieldSize(n); err != nil {
		return 0, err
	}
	row := idx.Row + n + n%2
	col := idx.Col + n/2 + 1
	if row < 1 || row > 2*n+1 {
		return 0, fmt.Errorf("%w: %v (row)", ErrIndexOutOfRange, idx)
	}
	if col < 1 || col > rowWidth(row, n) {
		return 0, fmt.Errorf("%w: %v (column)", ErrIndexOutOfRange, idx)
	}

	before := 0
	for r := 1; r < row; r++ {
		before += rowWidth(r, n)
	}

	return before + col - 1, nil
}
