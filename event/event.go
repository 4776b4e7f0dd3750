// SPDX-License-Identifier: MIT

package event

import (
	"fmt"
	"time"

	"github.com/katalvlaran/katona/grid"
)

// Kind tags an Event.
type Kind int

const (
	// StickChosen is emitted when a stick is picked up.
	StickChosen Kind = iota
	// StickPlaced is emitted when a held stick is put down on a cell.
	StickPlaced
	// Reset is emitted when the puzzle is restored to its default layout.
	Reset
	// ImpassePressed is emitted when the participant reports an impasse.
	ImpassePressed
)

// NoStick is the Stick value of events that carry no piece identity.
const NoStick = -1

var kindTags = [...]string{
	StickChosen:    "stick chosen",
	StickPlaced:    "stick placed",
	Reset:          "default place",
	ImpassePressed: "impasse-button pressed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindTags) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTags[k]
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	return []Kind{StickChosen, StickPlaced, Reset, ImpassePressed}
}

// IsMove reports whether k is a stick event.
func (k Kind) IsMove() bool {
	return k == StickChosen || k == StickPlaced
}

// Event is one semantic event. Time is measured by the session clock.
type Event struct {
	Kind  Kind
	Stick int
	Place grid.Index
	Time  time.Duration
}

// New returns an event of kind k without a stick.
func New(k Kind, t time.Duration) Event {
	return Event{Kind: k, Stick: NoStick, Time: t}
}

// HasStick reports whether e carries a piece identity.
func (e Event) HasStick() bool { return e.Stick != NoStick }

func (e Event) String() string {
	if !e.HasStick() {
		return fmt.Sprintf("%s at %s", e.Kind, e.Time)
	}
	return fmt.Sprintf("%s: stick %d %v at %s", e.Kind, e.Stick, e.Place, e.Time)
}
