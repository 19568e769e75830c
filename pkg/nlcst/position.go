package nlcst

import "fmt"

// Position is a cursor location in the source text.
// Line and Column are 1-based; Offset is 0-based and counts character
// units (code points), not bytes.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

// IsValid returns true if this position has valid values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// IsZero reports whether p is the zero Position.
// Placeholder spans on empty parents hold zero positions.
func (p Position) IsZero() bool {
	return p == Position{}
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the start/end range covered by a node.
type Span struct {
	Start Position `json:"start,omitzero" yaml:"start,omitempty"`
	End   Position `json:"end,omitzero" yaml:"end,omitempty"`
}

// IsEmpty reports whether s is an unfilled placeholder.
func (s Span) IsEmpty() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// Len returns the number of character units covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsSingleLine returns true if start and end are on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// String formats the span as start-end, matching unist-style inspectors.
func (s Span) String() string {
	if s.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s-%s, %d-%d", s.Start, s.End, s.Start.Offset, s.End.Offset)
}
