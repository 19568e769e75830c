package japanese

import (
	"fmt"

	"github.com/yaklabco/japarse/pkg/nlcst"
	"github.com/yaklabco/japarse/pkg/symbols"
)

// lineBreak is the value of every paragraph's trailing WhiteSpace node,
// whatever terminator the source line used.
const lineBreak = "\n"

// builder assembles one tree. It is created per Parse call and owns the
// cursor for that call.
type builder struct {
	positions bool
	cursor    *Cursor
	normalize symbols.Normalizer
}

func newBuilder(positions bool, normalize symbols.Normalizer) *builder {
	return &builder{
		positions: positions,
		cursor:    NewCursor(),
		normalize: normalize,
	}
}

// parent creates an empty parent node. With positions enabled it carries
// an empty placeholder span that add fills in.
func (b *builder) parent(kind nlcst.NodeKind) *nlcst.Node {
	node := nlcst.NewParent(kind)
	if b.positions {
		node.Position = &nlcst.Span{}
	}
	return node
}

// leaf creates a leaf node, advancing the cursor past value.
func (b *builder) leaf(kind nlcst.NodeKind, value string) *nlcst.Node {
	node := nlcst.NewLeaf(kind, value)
	if b.positions {
		span := b.cursor.Span(value)
		node.Position = &span
	}
	return node
}

// add appends node to parent. The parent's span is reset to run from its
// first child's start to the just-added child's end.
func (b *builder) add(node, parent *nlcst.Node) {
	parent.Children = append(parent.Children, node)
	if b.positions {
		parent.Position = &nlcst.Span{
			Start: parent.Children[0].Position.Start,
			End:   node.Position.End,
		}
	}
}

// paragraph builds the Paragraph for one source line.
func (b *builder) paragraph(index int, line string) (*nlcst.Node, error) {
	b.cursor.BeginLine(index)

	paragraph := b.parent(nlcst.KindParagraph)

	if line != "" {
		// Normalize before the leaf is positioned: the span must measure
		// the normalized text.
		str, err := b.normalize(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", index+1, err)
		}
		b.add(b.leaf(nlcst.KindText, str), paragraph)
	}

	b.add(b.leaf(nlcst.KindWhiteSpace, lineBreak), paragraph)

	return paragraph, nil
}

// tokenize builds the Root for text.
func (b *builder) tokenize(text string) (*nlcst.Node, error) {
	root := b.parent(nlcst.KindRoot)

	for index, line := range SplitLines(text) {
		paragraph, err := b.paragraph(index, line)
		if err != nil {
			return nil, err
		}
		b.add(paragraph, root)
	}

	return root, nil
}
