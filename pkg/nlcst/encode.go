package nlcst

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// wireNode is the plain nested-object form of a Node.
// Parents always carry children (possibly empty); leaves always carry a value.
type wireNode struct {
	Type     string     `json:"type" yaml:"type"`
	Children *[]*Node   `json:"children,omitempty" yaml:"children,omitempty"`
	Value    *wireValue `json:"value,omitempty" yaml:"value,omitempty"`
	Position *Span      `json:"position,omitempty" yaml:"position,omitempty"`
}

// wireValue is a leaf value. In YAML it is double-quoted whenever a plain
// or block scalar would not read back byte for byte.
type wireValue string

// MarshalYAML implements yaml.Marshaler.
func (v wireValue) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	if strings.ContainsAny(node.Value, "\r\n\t") || strings.TrimSpace(node.Value) != node.Value {
		node.Style = yaml.DoubleQuotedStyle
	}
	return node, nil
}

func (n Node) wire() wireNode {
	out := wireNode{
		Type:     n.Kind.String(),
		Position: n.Position,
	}
	if n.IsParent() {
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		out.Children = &children
	} else {
		value := wireValue(n.Value)
		out.Value = &value
	}
	return out
}

// MarshalJSON encodes the node as {type, children|value, position?}.
// Values are written verbatim: "<", ">" and "&" are not escaped.
func (n Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(n.wire()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML encodes the node with the same shape as MarshalJSON.
func (n Node) MarshalYAML() (any, error) {
	return n.wire(), nil
}

// UnmarshalJSON decodes a node previously produced by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in wireNode
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	return n.fromWire(in)
}

// UnmarshalYAML decodes a node previously produced by MarshalYAML.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var in wireNode
	if err := value.Decode(&in); err != nil {
		return err
	}
	return n.fromWire(in)
}

func (n *Node) fromWire(in wireNode) error {
	kind, ok := ParseKind(in.Type)
	if !ok {
		return fmt.Errorf("unknown node type %q", in.Type)
	}

	*n = Node{Kind: kind, Position: in.Position}
	if kind.IsParent() {
		n.Children = []*Node{}
		if in.Children != nil && *in.Children != nil {
			n.Children = *in.Children
		}
		return nil
	}

	if in.Value != nil {
		n.Value = string(*in.Value)
	}
	return nil
}
