// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/movement"
	"github.com/katalvlaran/katona/session"
)

var validate = validator.New()

// script is a recorded participant: a list of steps in time order.
//
//	steps:
//	  - {at: 1s, click: [0, 0]}
//	  - {at: 2s, move: [0, -2], wheel: 1, press: true}
//	  - {at: 3s, reset: true}
type script struct {
	Steps []step `yaml:"steps" validate:"required,min=1,dive"`
}

// step is one frame. Click expands to a release and a press on the cell;
// Move and Point only move the pointer. The pointer stays where the last
// step left it.
type step struct {
	At      time.Duration `yaml:"at" validate:"gte=0"`
	Click   *grid.Index   `yaml:"click"`
	Move    *grid.Index   `yaml:"move"`
	Point   []float64     `yaml:"point" validate:"omitempty,len=2"`
	Press   bool          `yaml:"press"`
	Wheel   int           `yaml:"wheel" validate:"gte=-1,lte=1"`
	Reset   bool          `yaml:"reset"`
	Impasse bool          `yaml:"impasse"`
	Button  bool          `yaml:"button"`
	Expire  bool          `yaml:"expire"`
}

// tick is an expanded frame.
type tick struct {
	At     time.Duration
	Input  session.Input
	Button bool
}

func loadScript(path string) (script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return script{}, fmt.Errorf("script: %w", err)
	}
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return script{}, fmt.Errorf("script: parse %s: %w", path, err)
	}
	if err := validate.Struct(sc); err != nil {
		return script{}, fmt.Errorf("script: %w", err)
	}
	for i := 1; i < len(sc.Steps); i++ {
		if sc.Steps[i].At < sc.Steps[i-1].At {
			return script{}, fmt.Errorf("script: step %d at %s goes back in time", i, sc.Steps[i].At)
		}
	}
	return sc, nil
}

// ticks expands the steps against g.
func (sc script) ticks(g *grid.Grid) ([]tick, error) {
	var (
		pos grid.Point
		out = make([]tick, 0, len(sc.Steps))
	)
	for i, s := range sc.Steps {
		target := s.Move
		if s.Click != nil {
			target = s.Click
		}
		switch {
		case target != nil:
			e, err := g.Lookup(*target)
			if err != nil {
				return nil, fmt.Errorf("script: step %d: %w", i, err)
			}
			pos = e.Position
		case s.Point != nil:
			pos = grid.Point{X: s.Point[0], Y: s.Point[1]}
		}

		if s.Click != nil {
			out = append(out, tick{At: s.At, Input: session.Input{Pointer: movement.Pointer{Position: pos}}})
		}
		out = append(out, tick{
			At: s.At,
			Input: session.Input{
				Pointer:        movement.Pointer{Position: pos, Pressed: s.Press || s.Click != nil, Wheel: s.Wheel},
				ResetPressed:   s.Reset,
				ImpassePressed: s.Impasse,
				TimeExpired:    s.Expire,
			},
			Button: s.Button,
		})
	}
	return out, nil
}
