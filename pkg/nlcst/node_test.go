package nlcst_test

import (
	"testing"

	"github.com/yaklabco/japarse/pkg/nlcst"
)

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     nlcst.NodeKind
		expected string
	}{
		{nlcst.KindRoot, "Root"},
		{nlcst.KindParagraph, "Paragraph"},
		{nlcst.KindText, "Text"},
		{nlcst.KindWhiteSpace, "WhiteSpace"},
		{nlcst.NodeKind(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			if tt.kind.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []nlcst.NodeKind{nlcst.KindRoot, nlcst.KindParagraph, nlcst.KindText, nlcst.KindWhiteSpace} {
		got, ok := nlcst.ParseKind(kind.String())
		if !ok || got != kind {
			t.Errorf("ParseKind(%q) = %v, %v", kind.String(), got, ok)
		}
	}

	if _, ok := nlcst.ParseKind("Sentence"); ok {
		t.Error("expected unknown kind to fail")
	}
}

func TestNode_IsParent(t *testing.T) {
	t.Parallel()

	if !nlcst.NewParent(nlcst.KindRoot).IsParent() {
		t.Error("Root should be a parent")
	}
	if !nlcst.NewParent(nlcst.KindParagraph).IsParent() {
		t.Error("Paragraph should be a parent")
	}
	if nlcst.NewLeaf(nlcst.KindText, "a").IsParent() {
		t.Error("Text should not be a parent")
	}
	if !nlcst.NewLeaf(nlcst.KindWhiteSpace, "\n").IsLeaf() {
		t.Error("WhiteSpace should be a leaf")
	}
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	if !root.HasChildren() {
		t.Error("expected root to have children")
	}
	if root.ChildCount() != 2 {
		t.Errorf("expected 2 children, got %d", root.ChildCount())
	}
	if root.FirstChild() != root.Children[0] || root.LastChild() != root.Children[1] {
		t.Error("FirstChild/LastChild do not match Children")
	}

	empty := nlcst.NewParent(nlcst.KindRoot)
	if empty.FirstChild() != nil || empty.LastChild() != nil {
		t.Error("expected nil first/last child on empty parent")
	}
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	if got := root.Text(); got != "タイトル\n\n" {
		t.Errorf("unexpected text %q", got)
	}
	if got := root.Children[0].Children[0].Text(); got != "タイトル" {
		t.Errorf("unexpected leaf text %q", got)
	}

	var nilNode *nlcst.Node
	if nilNode.Text() != "" {
		t.Error("nil node should have empty text")
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()

	span := nlcst.Span{
		Start: nlcst.Position{Line: 1, Column: 1, Offset: 0},
		End:   nlcst.Position{Line: 1, Column: 5, Offset: 4},
	}

	if span.IsEmpty() {
		t.Error("filled span reported as zero")
	}
	if span.Len() != 4 {
		t.Errorf("expected length 4, got %d", span.Len())
	}
	if !span.IsSingleLine() {
		t.Error("expected single line span")
	}
	if !span.Contains(3) || span.Contains(4) {
		t.Error("Contains should be end-exclusive")
	}
	if got := span.String(); got != "1:1-1:5, 0-4" {
		t.Errorf("unexpected span string %q", got)
	}
	if !span.Start.IsValid() {
		t.Error("expected valid start")
	}

	if !(nlcst.Span{}).IsEmpty() {
		t.Error("empty span should be zero")
	}
	if (nlcst.Span{}).String() != "" {
		t.Error("empty span should format as empty string")
	}
}
