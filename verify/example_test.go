// SPDX-License-Identifier: MIT

package verify_test

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/verify"
)

// ExampleChecker grades two moves against a one-pattern catalogue: the first
// lands on a target cell, the second does not and discards the lock.
func ExampleChecker() {
	var cat verify.Catalogue
	doc := "up:\n  sticks: [[-1, 0], [-2, 0], [-2, 1]]\n  positions: [[-4, 0], [-5, 0], [-4, 1]]\n"
	if err := yaml.Unmarshal([]byte(doc), &cat); err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := verify.NewChecker(&cat, verify.DefaultOptions())

	moves := [][2]grid.Index{
		{{Row: -1, Col: 0}, {Row: -4, Col: 0}},
		{{Row: -2, Col: 0}, {Row: 0, Col: 0}},
	}
	for _, m := range moves {
		c.Evaluate(event.Event{Kind: event.StickChosen, Place: m[0]})
		v := c.Evaluate(event.Event{Kind: event.StickPlaced, Place: m[1]})
		name, locked := c.Locked()
		fmt.Println(v, name, locked)
	}

	// Output:
	// correct up true
	// incorrect  false
}
