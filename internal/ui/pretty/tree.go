package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/japarse/pkg/nlcst"
)

// Tree guides, matching unist-util-inspect.
const (
	guideBranch = "├─ "
	guideLast   = "└─ "
	guideIndent = "│  "
	guideBlank  = "   "
)

// TreeFormatter renders nlcst trees as an indented outline:
//
//	Root[1] (1:1-1:4, 0-3)
//	└─ Paragraph[2] (1:1-1:4, 0-3)
//	   ├─ Text: "本文" (1:1-1:3, 0-2)
//	   └─ WhiteSpace: "\n" (1:3-1:4, 2-3)
type TreeFormatter struct {
	styles *Styles

	// MaxValueWidth truncates leaf values wider than this many cells.
	// Zero disables truncation.
	MaxValueWidth int
}

// NewTreeFormatter creates a TreeFormatter.
func NewTreeFormatter(styles *Styles, maxValueWidth int) *TreeFormatter {
	return &TreeFormatter{styles: styles, MaxValueWidth: maxValueWidth}
}

// Format returns the outline of root, one node per line.
func (f *TreeFormatter) Format(root *nlcst.Node) string {
	if root == nil {
		return ""
	}
	var builder strings.Builder
	f.writeNode(&builder, root, "", "")
	return builder.String()
}

func (f *TreeFormatter) writeNode(builder *strings.Builder, node *nlcst.Node, guide, childPrefix string) {
	builder.WriteString(f.styles.Guide.Render(guide))
	builder.WriteString(f.label(node))
	builder.WriteString("\n")

	for i, child := range node.Children {
		if i == len(node.Children)-1 {
			f.writeNode(builder, child, childPrefix+guideLast, childPrefix+guideBlank)
		} else {
			f.writeNode(builder, child, childPrefix+guideBranch, childPrefix+guideIndent)
		}
	}
}

func (f *TreeFormatter) label(node *nlcst.Node) string {
	var builder strings.Builder

	if node.IsParent() {
		builder.WriteString(f.styles.ParentType.Render(node.Kind.String()))
		builder.WriteString("[" + strconv.Itoa(node.ChildCount()) + "]")
	} else {
		builder.WriteString(f.styles.LeafType.Render(node.Kind.String()))
		builder.WriteString(": ")
		builder.WriteString(f.styles.Value.Render(strconv.Quote(Truncate(node.Value, f.MaxValueWidth))))
	}

	if node.Position != nil {
		if span := node.Position.String(); span != "" {
			builder.WriteString(" " + f.styles.Position.Render("("+span+")"))
		}
	}

	return builder.String()
}
