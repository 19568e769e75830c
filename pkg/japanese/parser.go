// Package japanese transforms Japanese natural-language text into an
// nlcst tree: one Paragraph per source line, holding a Text node with the
// symbol-normalized line and a trailing WhiteSpace line break.
package japanese

import (
	"github.com/yaklabco/japarse/pkg/nlcst"
	"github.com/yaklabco/japarse/pkg/symbols"
)

// Source is anything that can provide the full text to parse, such as a
// vfile.File.
type Source interface {
	String() string
}

type inputKind uint8

const (
	inputNone inputKind = iota
	inputText
	inputSource
)

// Input is the text a Parser is bound to at construction: either raw text,
// a Source, or nothing (the zero value).
type Input struct {
	kind   inputKind
	text   string
	source Source
}

// Text binds raw text.
func Text(text string) Input {
	return Input{kind: inputText, text: text}
}

// FromSource binds a Source. A nil source yields an unbound Input.
func FromSource(source Source) Input {
	if source == nil {
		return Input{}
	}
	return Input{kind: inputSource, source: source}
}

// IsBound reports whether the input carries text or a source.
func (in Input) IsBound() bool {
	return in.kind != inputNone
}

// resolve returns the bound text, or fallback when nothing is bound.
func (in Input) resolve(fallback string) string {
	switch in.kind {
	case inputText:
		return in.text
	case inputSource:
		return in.source.String()
	default:
		return fallback
	}
}

// Options configures a Parser.
type Options struct {
	// NoPosition disables position tracking. Trees produced without
	// positions carry no Position on any node.
	NoPosition bool

	// Normalizer rewrites non-empty line content before it is stored.
	// Defaults to symbols.WideJapanese.
	Normalizer symbols.Normalizer
}

// Parser converts text into nlcst trees. A Parser holds no per-parse
// state: every Parse call starts from a fresh cursor at 1:1, offset 0.
type Parser struct {
	input     Input
	positions bool
	normalize symbols.Normalizer
}

// New creates a Parser bound to input (which may be the zero Input).
func New(input Input, opts Options) *Parser {
	normalize := opts.Normalizer
	if normalize == nil {
		normalize = symbols.WideJapanese
	}
	return &Parser{
		input:     input,
		positions: !opts.NoPosition,
		normalize: normalize,
	}
}

// Positions reports whether the parser stamps positions on nodes.
func (p *Parser) Positions() bool {
	return p.positions
}

// Parse builds a Root node. The bound input is used when present;
// otherwise text is parsed. The only error source is the normalizer.
func (p *Parser) Parse(text string) (*nlcst.Node, error) {
	return newBuilder(p.positions, p.normalize).tokenize(p.input.resolve(text))
}

// ParseString parses text with a one-off Parser.
func ParseString(text string, opts Options) (*nlcst.Node, error) {
	return New(Input{}, opts).Parse(text)
}
