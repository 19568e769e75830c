// Package config defines core configuration types for japarse.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "slices"

// OutputFormat selects how parse results are rendered.
type OutputFormat string

const (
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatInspect OutputFormat = "inspect"
	FormatText    OutputFormat = "text"
	FormatSummary OutputFormat = "summary"
)

// OutputFormats lists every supported format in display order.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatJSON, FormatYAML, FormatInspect, FormatText, FormatSummary}
}

// IsValid reports whether f names a supported format.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(OutputFormats(), f)
}

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DefaultExtension is the file extension picked up by directory discovery
// when none is configured.
const DefaultExtension = ".txt"

// Config is the root configuration structure for japarse.
//
// Pointer fields distinguish "unset" from an explicit false so that a
// higher-precedence layer can turn a feature off.
type Config struct {
	// Position enables position tracking on every node. Unset means on.
	Position *Flag `yaml:"position,omitempty"`

	// Format is the output format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Compact disables indentation in json output.
	Compact *Flag `yaml:"compact,omitempty"`

	// Color is the color mode for inspect and summary output.
	Color ColorMode `yaml:"color,omitempty"`

	// Extensions are the file extensions collected when a directory is
	// given on the command line.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Jobs is the number of parallel parse workers (0 = GOMAXPROCS).
	Jobs int `yaml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// Output is the destination file; empty means stdout.
	Output string `yaml:"-"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Position:   FlagOf(true),
		Format:     FormatJSON,
		Compact:    FlagOf(false),
		Color:      ColorAuto,
		Extensions: []string{DefaultExtension},
		Ignore:     nil,
		Jobs:       0,
	}
}

// PositionEnabled reports whether positions should be tracked.
func (c *Config) PositionEnabled() bool {
	if c == nil {
		return true
	}
	return c.Position.Or(true)
}

// CompactEnabled reports whether json output should be compact.
func (c *Config) CompactEnabled() bool {
	if c == nil {
		return false
	}
	return c.Compact.Or(false)
}
