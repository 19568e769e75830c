package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Flag is a boolean that accepts any YAML value and coerces it by
// truthiness: false, 0, the empty string and the string "false" are false,
// everything else is true.
type Flag bool

// FlagOf returns a pointer to a Flag holding v.
func FlagOf(v bool) *Flag {
	f := Flag(v)
	return &f
}

// Or returns the flag's value, or fallback when f is nil.
func (f *Flag) Or(fallback bool) bool {
	if f == nil {
		return fallback
	}
	return bool(*f)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		// Sequences and mappings are objects, and objects are truthy.
		*f = true
		return nil
	}
	if node.Tag == "!!null" {
		*f = false
		return nil
	}
	*f = Flag(Truthy(node.Value))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Flag) MarshalYAML() (any, error) {
	return bool(f), nil
}

// Truthy coerces a textual value to a boolean. It is used for both config
// files and JAPARSE_* environment variables.
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "null", "~":
		return false
	default:
		return true
	}
}
