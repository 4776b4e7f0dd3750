// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/katona/feedback"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/training"
	"github.com/katalvlaran/katona/verify"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid experiment")

var validate *validator.Validate

func init() {
	validate = validator.New()
	err := validate.RegisterValidation("odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 != 0
	})
	if err != nil {
		panic(err)
	}
}

// Experiment is the complete configuration of one puzzle session.
type Experiment struct {
	Grid      Grid              `yaml:"grid"`
	Movable   []grid.Index      `yaml:"movable" validate:"required,min=1"`
	Solutions *verify.Catalogue `yaml:"solutions" validate:"required"`
	Verifier  Verifier          `yaml:"verifier"`
	Impasse   Impasse           `yaml:"impasse"`
	Session   Session           `yaml:"session"`
	Feedback  Feedback          `yaml:"feedback"`
	Colors    Colors            `yaml:"colors"`
	Training  Training          `yaml:"training"`
	Logging   Logging           `yaml:"logging"`
	Storage   Storage           `yaml:"storage"`
	Metrics   Metrics           `yaml:"metrics"`
}

// Grid describes the cell layout.
type Grid struct {
	FieldSize     int     `yaml:"field_size" validate:"gt=1,odd"`
	UnitLength    float64 `yaml:"unit_length" validate:"gt=0"`
	UnitThickness float64 `yaml:"unit_thickness" validate:"gte=0"`
}

// Options converts g to grid options.
func (g Grid) Options() grid.Options {
	return grid.Options{FieldSize: g.FieldSize, UnitLength: g.UnitLength, UnitThickness: g.UnitThickness}
}

// Verifier configures the solution checker.
type Verifier struct {
	ResetAfter int `yaml:"reset_after" validate:"gte=1"`
}

// Impasse configures the pause detector.
type Impasse struct {
	MinSamples       int  `yaml:"min_samples" validate:"gte=2"`
	ExcludeAnomalies bool `yaml:"exclude_anomalies"`
}

// Session configures the puzzle outcome.
type Session struct {
	TimeLimit    time.Duration `yaml:"time_limit" validate:"gt=0"`
	MovesToSolve int           `yaml:"moves_to_solve" validate:"gte=1"`
}

// Feedback selects the feedback variant.
type Feedback struct {
	Kind           string        `yaml:"kind" validate:"oneof=none positive negative phrases"`
	Duration       time.Duration `yaml:"duration" validate:"gte=0"`
	Phrases        []string      `yaml:"phrases,omitempty"`
	PhraseShowTime time.Duration `yaml:"phrase_show_time" validate:"gte=0"`
	PhraseGap      time.Duration `yaml:"phrase_gap" validate:"gte=0"`
	Seed           int64         `yaml:"seed"`

	// Type is the experiment condition logged in feedback.type. Empty
	// means Kind.
	Type string `yaml:"type,omitempty"`
}

// Label returns the value logged in the feedback.type column.
func (f Feedback) Label() string {
	if f.Type != "" {
		return f.Type
	}
	return f.Kind
}

// Options converts f to feedback options.
func (f Feedback) Options() feedback.Options {
	return feedback.Options{
		Kind:           feedback.Kind(f.Kind),
		Duration:       f.Duration,
		Phrases:        f.Phrases,
		PhraseShowTime: f.PhraseShowTime,
		PhraseGap:      f.PhraseGap,
		Seed:           f.Seed,
	}
}

// Training configures the tutorial field.
type Training struct {
	Enabled   bool `yaml:"enabled"`
	FieldSize int  `yaml:"field_size" validate:"gt=1,odd"`
}

// Logging configures the CLI logger.
type Logging struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Storage configures persistence. An empty Path keeps entries in memory.
type Storage struct {
	Path string `yaml:"path"`
}

// Metrics configures the Prometheus collectors.
type Metrics struct {
	Namespace string `yaml:"namespace" validate:"required"`
	Subsystem string `yaml:"subsystem"`
}

func idx(r, c int) grid.Index { return grid.Index{Row: r, Col: c} }

// DefaultMovable returns the sixteen sticks of the five-square cross.
func DefaultMovable() []grid.Index {
	return []grid.Index{
		idx(-1, -1), idx(0, -1), idx(1, -1),
		idx(-2, 0), idx(-3, 0), idx(-2, 1),
		idx(0, 0), idx(-1, 0), idx(1, 0), idx(0, 1),
		idx(-1, 1), idx(0, 2), idx(1, 1),
		idx(2, 0), idx(3, 0), idx(2, 1),
	}
}

// DefaultSolutions returns the four ways to turn five squares into four by
// moving three sticks.
func DefaultSolutions() *verify.Catalogue {
	cat, err := verify.NewCatalogue(
		verify.Pattern{Name: "left",
			Sticks:    []grid.Index{idx(0, 0), idx(-1, -1), idx(1, -1)},
			Positions: []grid.Index{idx(0, -2), idx(-1, -2), idx(1, -2)}},
		verify.Pattern{Name: "right",
			Sticks:    []grid.Index{idx(0, 1), idx(-1, 1), idx(1, 1)},
			Positions: []grid.Index{idx(0, 3), idx(-1, 2), idx(1, 2)}},
		verify.Pattern{Name: "up",
			Sticks:    []grid.Index{idx(-1, 0), idx(-2, 0), idx(-2, 1)},
			Positions: []grid.Index{idx(-4, 0), idx(-5, 0), idx(-4, 1)}},
		verify.Pattern{Name: "down",
			Sticks:    []grid.Index{idx(1, 0), idx(2, 0), idx(2, 1)},
			Positions: []grid.Index{idx(4, 0), idx(5, 0), idx(4, 1)}},
	)
	if err != nil {
		panic(err) // static data
	}
	return cat
}

// Default returns the five-square Katona experiment.
func Default() Experiment {
	fb := feedback.DefaultOptions()
	return Experiment{
		Grid:      Grid{FieldSize: 9, UnitLength: 40, UnitThickness: 15},
		Movable:   DefaultMovable(),
		Solutions: DefaultSolutions(),
		Verifier:  Verifier{ResetAfter: 3},
		Impasse:   Impasse{MinSamples: 30},
		Session:   Session{TimeLimit: 15 * time.Minute, MovesToSolve: 3},
		Feedback: Feedback{
			Kind:           string(fb.Kind),
			Duration:       fb.Duration,
			PhraseShowTime: fb.PhraseShowTime,
			PhraseGap:      fb.PhraseGap,
		},
		Colors:   DefaultColors(),
		Training: Training{Enabled: true, FieldSize: 5},
		Logging:  Logging{Level: "info"},
		Metrics:  Metrics{Namespace: "katona", Subsystem: "session"},
	}
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (Experiment, error) {
	e := Default()
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Experiment{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := e.Validate(); err != nil {
		return Experiment{}, err
	}
	return e, nil
}

// Load reads and parses the experiment file at path.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("config: load: %w", err)
	}
	return Parse(data)
}

// Marshal encodes e as YAML.
func (e Experiment) Marshal() ([]byte, error) {
	return yaml.Marshal(e)
}

// Validate checks struct tags, then cross-checks indices against the grid.
func (e Experiment) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	g, err := grid.New(e.Grid.Options())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	seen := make(map[grid.Index]struct{}, len(e.Movable))
	for _, m := range e.Movable {
		if !g.Contains(m) {
			return fmt.Errorf("%w: movable stick %v: %w", ErrInvalid, m, grid.ErrIndexOutOfRange)
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("%w: movable stick %v listed twice", ErrInvalid, m)
		}
		seen[m] = struct{}{}
	}
	if err := e.Solutions.Validate(g); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := e.Feedback.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := e.Colors.validate(len(e.Movable)); err != nil {
		return fmt.Errorf("%w: colors: %w", ErrInvalid, err)
	}
	if e.Training.Enabled {
		tg, err := grid.New(e.TrainingGrid())
		if err != nil {
			return fmt.Errorf("%w: training: %w", ErrInvalid, err)
		}
		if err := training.Validate(tg, training.DefaultStages()); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// TrainingGrid returns the layout of the tutorial field: the main grid's
// stick size with the training field size.
func (e Experiment) TrainingGrid() grid.Options {
	o := e.Grid.Options()
	o.FieldSize = e.Training.FieldSize
	return o
}
