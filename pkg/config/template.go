package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" (default) or "json".
	Format string
}

// GenerateTemplate creates a commented configuration file template
// holding the default values.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}

	return []byte(DefaultTemplateHeader() + `

# Attach line/column/offset positions to every node.
# Any value is accepted and coerced by truthiness.
position: true

# Output format: json, yaml, inspect, text, or summary
format: json

# Emit single-line json
# compact: false

# Colored output: auto, always, or never
# color: auto

# Extensions collected when a directory is given
extensions:
  - .txt

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "build/**"
`), nil
}

// templateToJSON renders the defaults as indented JSON. JSON has no
// comments, so only the values survive.
func templateToJSON() ([]byte, error) {
	defaults := NewConfig()

	cfg := map[string]any{
		"position":   defaults.PositionEnabled(),
		"format":     defaults.Format,
		"compact":    defaults.CompactEnabled(),
		"color":      defaults.Color,
		"extensions": defaults.Extensions,
		"jobs":       defaults.Jobs,
		"ignore":     []string{},
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# japarse configuration
# See: https://github.com/yaklabco/japarse`
}
