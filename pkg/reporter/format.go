package reporter

import (
	"fmt"

	"github.com/yaklabco/japarse/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatJSON    = Format(config.FormatJSON)
	FormatYAML    = Format(config.FormatYAML)
	FormatInspect = Format(config.FormatInspect)
	FormatText    = Format(config.FormatText)
	FormatSummary = Format(config.FormatSummary)
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string selects json.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatJSON, nil
	}
	format := Format(formatStr)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: json, yaml, inspect, text, summary", formatStr)
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return config.OutputFormat(f).IsValid()
}
