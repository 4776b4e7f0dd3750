// SPDX-License-Identifier: MIT

package session

import "fmt"

// Outcome is the state of a puzzle attempt.
type Outcome int

const (
	InProgress Outcome = iota
	Solved
	TimeExpired
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Solved:
		return "solved"
	case TimeExpired:
		return "time expired"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Final reports whether o ends the attempt.
func (o Outcome) Final() bool { return o != InProgress }
