package japanese_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/japarse/pkg/japanese"
	"github.com/yaklabco/japarse/pkg/nlcst"
)

func TestCharUnitLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"line break", "\n", 1},
		{"kana", "タイトル", 4},
		{"supplementary plane is one unit", "𠮷", 1},
		{"mixed", "𠮷野家です", 5},
		{"emoji", "😀!", 2},
		{"invalid byte counts once", "a\xffb", 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, japanese.CharUnitLength(testCase.value))
		})
	}
}

func TestCursor(t *testing.T) {
	t.Parallel()

	t.Run("starts at 1:1 offset 0", func(t *testing.T) {
		t.Parallel()

		cursor := japanese.NewCursor()
		assert.Equal(t, nlcst.Position{Line: 1, Column: 1, Offset: 0}, cursor.Now())
	})

	t.Run("next advances column and offset", func(t *testing.T) {
		t.Parallel()

		cursor := japanese.NewCursor()
		got := cursor.Next("𠮷野")
		assert.Equal(t, nlcst.Position{Line: 1, Column: 3, Offset: 2}, got)
		assert.Equal(t, got, cursor.Now())
	})

	t.Run("span captures start before advancing", func(t *testing.T) {
		t.Parallel()

		cursor := japanese.NewCursor()
		cursor.Next("ab")
		span := cursor.Span("𠮷")
		assert.Equal(t, nlcst.Position{Line: 1, Column: 3, Offset: 2}, span.Start)
		assert.Equal(t, nlcst.Position{Line: 1, Column: 4, Offset: 3}, span.End)
	})

	t.Run("begin line resets line and column but keeps offset", func(t *testing.T) {
		t.Parallel()

		cursor := japanese.NewCursor()
		cursor.Next("abcd")
		cursor.BeginLine(2)
		assert.Equal(t, nlcst.Position{Line: 3, Column: 1, Offset: 4}, cursor.Now())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()

		cursor := japanese.NewCursor()
		before := cursor.Now()
		cursor.Next("x")
		assert.Equal(t, 0, before.Offset)
	})
}
