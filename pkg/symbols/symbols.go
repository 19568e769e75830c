// Package symbols normalizes the width of Japanese typographic symbols.
package symbols

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Normalizer rewrites line content before it is stored in a Text node.
type Normalizer func(string) (string, error)

// halfwidthJapanese covers the halfwidth CJK punctuation block:
// ｡ ｢ ｣ ､ ･ (U+FF61..U+FF65).
//
//nolint:gochecknoglobals // Read-only lookup table.
var halfwidthJapanese = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xFF61, Hi: 0xFF65, Stride: 1},
	},
}

// WideJapanese converts halfwidth Japanese punctuation to its fullwidth form
// (｡→。 ｢→「 ｣→」 ､→、 ･→・). Every other rune is left untouched.
func WideJapanese(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	// Transformers carry state, so build one per call.
	widen := runes.If(runes.In(halfwidthJapanese), width.Widen, nil)

	out, _, err := transform.String(widen, value)
	if err != nil {
		return "", fmt.Errorf("widen symbols: %w", err)
	}
	return out, nil
}

// Identity returns its input unchanged.
func Identity(value string) (string, error) {
	return value, nil
}

// IsHalfwidthSymbol reports whether r is converted by WideJapanese.
func IsHalfwidthSymbol(r rune) bool {
	return unicode.Is(halfwidthJapanese, r)
}
