// SPDX-License-Identifier: MIT

package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/grid"
)

func TestKindTags(t *testing.T) {
	assert.Equal(t, "stick chosen", event.StickChosen.String())
	assert.Equal(t, "stick placed", event.StickPlaced.String())
	assert.Equal(t, "default place", event.Reset.String())
	assert.Equal(t, "impasse-button pressed", event.ImpassePressed.String())
	assert.Equal(t, "kind(7)", event.Kind(7).String())
}

func TestIsMove(t *testing.T) {
	for _, k := range event.Kinds() {
		assert.Equal(t, k == event.StickChosen || k == event.StickPlaced, k.IsMove(), k.String())
	}
}

func TestEventString(t *testing.T) {
	e := event.Event{Kind: event.StickPlaced, Stick: 2, Place: grid.Index{Row: 1, Col: -1}, Time: 1500 * time.Millisecond}
	assert.Equal(t, "stick placed: stick 2 (1,-1) at 1.5s", e.String())

	r := event.New(event.Reset, time.Second)
	assert.False(t, r.HasStick())
	assert.Equal(t, "default place at 1s", r.String())
}
