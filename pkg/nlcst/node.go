// Package nlcst provides a shallow natural-language concrete syntax tree.
// A tree is a Root of Paragraphs, each holding Text and WhiteSpace leaves,
// optionally annotated with character-unit positions.
package nlcst

import "strings"

// NodeKind classifies the type of a tree node.
type NodeKind uint8

// Node kinds. Root and Paragraph are parents; Text and WhiteSpace are leaves.
const (
	KindRoot NodeKind = iota
	KindParagraph
	KindText
	KindWhiteSpace
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	KindRoot:       "Root",
	KindParagraph:  "Paragraph",
	KindText:       "Text",
	KindWhiteSpace: "WhiteSpace",
}

// String returns the serialized type name of the kind.
func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind maps a serialized type name back to a NodeKind.
func ParseKind(name string) (NodeKind, bool) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return NodeKind(kind), true
		}
	}
	return 0, false
}

// IsParent returns true for kinds that carry children.
func (k NodeKind) IsParent() bool {
	return k == KindRoot || k == KindParagraph
}

// Node is a single node in the tree.
//
// Parents use Children; leaves use Value. Position is nil when position
// tracking was disabled for the parse that produced the node. Trees are
// built bottom-up and must not be mutated once returned to a caller.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Children holds the ordered children of a parent node.
	Children []*Node

	// Value is the literal text of a leaf node.
	Value string

	// Position is the character-unit span covered by the node.
	Position *Span
}

// NewParent creates an empty parent node of the given kind.
func NewParent(kind NodeKind) *Node {
	return &Node{Kind: kind, Children: []*Node{}}
}

// NewLeaf creates a leaf node with the given value.
func NewLeaf(kind NodeKind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// IsParent returns true if this node carries children.
func (n *Node) IsParent() bool {
	return n.Kind.IsParent()
}

// IsLeaf returns true if this node carries a value.
func (n *Node) IsLeaf() bool {
	return !n.Kind.IsParent()
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.Children)
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// HasPosition reports whether the node carries a span.
func (n *Node) HasPosition() bool {
	return n.Position != nil
}

// Text returns the concatenated values of all leaves under n.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.Value
	}

	var sb strings.Builder
	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(n, func(child *Node) error {
		if child.IsLeaf() {
			sb.WriteString(child.Value)
		}
		return nil
	})
	return sb.String()
}
