package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/japarse/internal/ui/pretty"
	"github.com/yaklabco/japarse/pkg/japanese"
)

func TestTreeFormatter(t *testing.T) {
	t.Parallel()

	t.Run("with positions", func(t *testing.T) {
		t.Parallel()

		root, err := japanese.ParseString("タイトル\n\n本文", japanese.Options{})
		require.NoError(t, err)

		got := pretty.NewTreeFormatter(pretty.NewStyles(false), 0).Format(root)
		expected := `Root[3] (1:1-3:4, 0-9)
├─ Paragraph[2] (1:1-1:6, 0-5)
│  ├─ Text: "タイトル" (1:1-1:5, 0-4)
│  └─ WhiteSpace: "\n" (1:5-1:6, 4-5)
├─ Paragraph[2] (2:1-2:2, 5-6)
│  ├─ Text: "" (2:1-2:1, 5-5)
│  └─ WhiteSpace: "\n" (2:1-2:2, 5-6)
└─ Paragraph[2] (3:1-3:4, 6-9)
   ├─ Text: "本文" (3:1-3:3, 6-8)
   └─ WhiteSpace: "\n" (3:3-3:4, 8-9)
`
		assert.Equal(t, expected, got)
	})

	t.Run("without positions", func(t *testing.T) {
		t.Parallel()

		root, err := japanese.ParseString("本文", japanese.Options{NoPosition: true})
		require.NoError(t, err)

		got := pretty.NewTreeFormatter(pretty.NewStyles(false), 0).Format(root)
		expected := `Root[1]
└─ Paragraph[2]
   ├─ Text: "本文"
   └─ WhiteSpace: "\n"
`
		assert.Equal(t, expected, got)
	})

	t.Run("empty root keeps placeholder silent", func(t *testing.T) {
		t.Parallel()

		root, err := japanese.ParseString("", japanese.Options{})
		require.NoError(t, err)

		got := pretty.NewTreeFormatter(pretty.NewStyles(false), 0).Format(root)
		assert.Equal(t, "Root[0]\n", got)
	})

	t.Run("truncates wide values", func(t *testing.T) {
		t.Parallel()

		root, err := japanese.ParseString("これは長い本文です", japanese.Options{NoPosition: true})
		require.NoError(t, err)

		got := pretty.NewTreeFormatter(pretty.NewStyles(false), 7).Format(root)
		assert.Contains(t, got, `Text: "これは…"`)
	})

	t.Run("nil root", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pretty.NewTreeFormatter(pretty.NewStyles(false), 0).Format(nil))
	})
}
