// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// Colour group names.
const (
	GroupCentral = "central"
	GroupBetween = "between"
	GroupDistant = "distant"
)

// PositionsAll keeps every directional stick in its own group.
const PositionsAll = "all"

// directions indexes StickGroups.Central and StickGroups.Distant.
var directions = map[string]int{"left": 0, "up": 1, "right": 2, "down": 3}

// Colors assigns the movable sticks to colour groups. Stick IDs are
// positions in Experiment.Movable.
type Colors struct {
	Enabled bool `yaml:"enabled"`

	// Positions is "all" or one of left, up, right, down. A single
	// direction keeps only that direction's central and distant sticks in
	// their groups; the other directional sticks join between.
	Positions string            `yaml:"positions" validate:"oneof=all left up right down"`
	Groups    StickGroups       `yaml:"groups"`
	Labels    map[string]string `yaml:"labels,omitempty"`
}

// StickGroups lists stick IDs per group. Central and Distant are ordered
// left, up, right, down.
type StickGroups struct {
	Central []int `yaml:"central"`
	Between []int `yaml:"between"`
	Distant []int `yaml:"distant"`
}

// DefaultColors returns the grouping of the five-square cross: the four
// sticks around the middle square, the four outermost sticks and the rest.
// Colouring is off.
func DefaultColors() Colors {
	return Colors{
		Positions: PositionsAll,
		Groups: StickGroups{
			Central: []int{6, 7, 9, 8},
			Between: []int{0, 2, 3, 5, 10, 12, 13, 15},
			Distant: []int{1, 4, 11, 14},
		},
	}
}

// Label returns the logged colour of group, which is the group name unless
// Labels overrides it.
func (c Colors) Label(group string) string {
	if l, ok := c.Labels[group]; ok && l != "" {
		return l
	}
	return group
}

// Assign maps stick IDs to colour labels. It returns nil when colouring is
// disabled. Sticks in no group have no entry.
func (c Colors) Assign() map[int]string {
	if !c.Enabled {
		return nil
	}
	central, distant := c.Groups.Central, c.Groups.Distant
	between := append([]int(nil), c.Groups.Between...)
	if d, ok := directions[c.Positions]; ok {
		between = append(between, without(central, d)...)
		between = append(between, without(distant, d)...)
		central, distant = central[d:d+1], distant[d:d+1]
	}
	out := make(map[int]string, len(central)+len(between)+len(distant))
	for _, id := range central {
		out[id] = c.Label(GroupCentral)
	}
	for _, id := range between {
		out[id] = c.Label(GroupBetween)
	}
	for _, id := range distant {
		out[id] = c.Label(GroupDistant)
	}
	return out
}

func without(ids []int, i int) []int {
	out := make([]int, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

func (c Colors) validate(sticks int) error {
	if !c.Enabled {
		return nil
	}
	if c.Positions != PositionsAll {
		if len(c.Groups.Central) != len(directions) || len(c.Groups.Distant) != len(directions) {
			return errors.New("positions other than all need four central and four distant sticks")
		}
	}
	seen := make(map[int]struct{}, sticks)
	for _, ids := range [][]int{c.Groups.Central, c.Groups.Between, c.Groups.Distant} {
		for _, id := range ids {
			if id < 0 || id >= sticks {
				return fmt.Errorf("stick %d out of range [0, %d)", id, sticks)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("stick %d in two groups", id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
