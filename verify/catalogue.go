// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/katona/grid"
)

// Pattern is one named target configuration.
type Pattern struct {
	Name      string
	Sticks    []grid.Index
	Positions []grid.Index
}

// Catalogue is an ordered, immutable set of patterns.
type Catalogue struct {
	patterns []Pattern
	byName   map[string]int
}

// NewCatalogue validates and stores patterns in the given order.
func NewCatalogue(patterns ...Pattern) (*Catalogue, error) {
	c := &Catalogue{
		patterns: make([]Pattern, 0, len(patterns)),
		byName:   make(map[string]int, len(patterns)),
	}
	for _, p := range patterns {
		if err := c.add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalogue) add(p Pattern) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrEmptyPattern)
	case len(p.Sticks) == 0:
		return fmt.Errorf("%w: %q has no sticks", ErrEmptyPattern, p.Name)
	case len(p.Positions) == 0:
		return fmt.Errorf("%w: %q has no positions", ErrEmptyPattern, p.Name)
	}
	if _, dup := c.byName[p.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicatePattern, p.Name)
	}
	c.byName[p.Name] = len(c.patterns)
	c.patterns = append(c.patterns, Pattern{
		Name:      p.Name,
		Sticks:    append([]grid.Index(nil), p.Sticks...),
		Positions: append([]grid.Index(nil), p.Positions...),
	})
	return nil
}

// Len returns the number of patterns.
func (c *Catalogue) Len() int { return len(c.patterns) }

// Patterns returns a copy of the patterns in catalogue order.
func (c *Catalogue) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	for i, p := range c.patterns {
		out[i] = Pattern{
			Name:      p.Name,
			Sticks:    append([]grid.Index(nil), p.Sticks...),
			Positions: append([]grid.Index(nil), p.Positions...),
		}
	}
	return out
}

// Get returns the pattern called name.
func (c *Catalogue) Get(name string) (Pattern, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Pattern{}, false
	}
	return c.patterns[i], true
}

// Validate checks that every index of every pattern exists in g.
func (c *Catalogue) Validate(g *grid.Grid) error {
	for _, p := range c.patterns {
		for _, set := range [][]grid.Index{p.Sticks, p.Positions} {
			for _, idx := range set {
				if !g.Contains(idx) {
					return fmt.Errorf("%w: pattern %q refers to %v", ErrUnknownIndex, p.Name, idx)
				}
			}
		}
	}
	return nil
}

// patternDoc is the YAML shape of one pattern.
type patternDoc struct {
	Sticks    []grid.Index `yaml:"sticks"`
	Positions []grid.Index `yaml:"positions"`
}

// UnmarshalYAML decodes a name → pattern mapping, keeping document order.
func (c *Catalogue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("verify: line %d: catalogue must be a mapping", node.Line)
	}
	out := &Catalogue{byName: make(map[string]int, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var doc patternDoc
		if err := val.Decode(&doc); err != nil {
			return fmt.Errorf("verify: pattern %q: %w", key.Value, err)
		}
		if err := out.add(Pattern{Name: key.Value, Sticks: doc.Sticks, Positions: doc.Positions}); err != nil {
			return err
		}
	}
	*c = *out
	return nil
}

// MarshalYAML encodes c as a mapping in catalogue order, each index as a
// flow sequence [row, col].
func (c *Catalogue) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range c.patterns {
		body := &yaml.Node{Kind: yaml.MappingNode}
		body.Content = append(body.Content,
			scalar("sticks"), grid.IndexesNode(p.Sticks),
			scalar("positions"), grid.IndexesNode(p.Positions),
		)
		root.Content = append(root.Content, scalar(p.Name), body)
	}
	return root, nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
