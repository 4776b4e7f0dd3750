// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes an index written as a [row, col] sequence.
func (i *Index) UnmarshalYAML(n *yaml.Node) error {
	var pair []int
	if err := n.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("grid: line %d: index must be [row, col], got %d values", n.Line, len(pair))
	}
	*i = Index{Row: pair[0], Col: pair[1]}
	return nil
}

// MarshalYAML encodes i as a flow sequence [row, col].
func (i Index) MarshalYAML() (interface{}, error) {
	return i.node(), nil
}

func (i Index) node() *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i.Row)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i.Col)},
		},
	}
}

// IndexesNode returns idx as a flow sequence of [row, col] pairs.
func IndexesNode(idx []Index) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, i := range idx {
		seq.Content = append(seq.Content, i.node())
	}
	return seq
}
