package japanese

import (
	"unicode/utf8"

	"github.com/yaklabco/japarse/pkg/nlcst"
)

// Cursor tracks the current line, column and offset of one parse.
// Offset is never reset; Line and Column are reset by BeginLine.
type Cursor struct {
	Line   int
	Column int
	Offset int
}

// NewCursor returns a cursor at the start of a document.
func NewCursor() *Cursor {
	return &Cursor{Line: 1, Column: 1, Offset: 0}
}

// Now returns a snapshot of the cursor.
func (c *Cursor) Now() nlcst.Position {
	return nlcst.Position{
		Line:   c.Line,
		Column: c.Column,
		Offset: c.Offset,
	}
}

// Next advances Offset and Column by the character-unit length of value
// and returns the position after the advance.
func (c *Cursor) Next(value string) nlcst.Position {
	length := CharUnitLength(value)
	c.Offset += length
	c.Column += length
	return c.Now()
}

// Span returns the span covered by value starting at the cursor, and
// advances the cursor past it.
func (c *Cursor) Span(value string) nlcst.Span {
	start := c.Now()
	end := c.Next(value)
	return nlcst.Span{Start: start, End: end}
}

// BeginLine moves the cursor to column 1 of the line with the given
// 0-based index. Offset carries over from the previous line.
func (c *Cursor) BeginLine(index int) {
	c.Line = index + 1
	c.Column = 1
}

// CharUnitLength counts the character units in value. A character unit is
// one code point, so characters outside the Basic Multilingual Plane count
// as one. Invalid UTF-8 bytes count as one unit each.
func CharUnitLength(value string) int {
	return utf8.RuneCountInString(value)
}
