package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/japarse/pkg/config"
)

// envVarPrefix is the prefix for all japarse environment variables.
const envVarPrefix = "JAPARSE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeFlag
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"POSITION":   {field: "position", typ: envTypeFlag, help: "Track positions; any value, coerced by truthiness"},
	"FORMAT":     {field: "format", typ: envTypeString, help: "Output format: json, yaml, inspect, text, or summary"},
	"COMPACT":    {field: "compact", typ: envTypeFlag, help: "Single-line json output"},
	"COLOR":      {field: "color", typ: envTypeString, help: "Color mode: auto, always, or never"},
	"JOBS":       {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
	"EXTENSIONS": {field: "extensions", typ: envTypeSlice, help: "Comma-separated extensions collected from directories"},
	"IGNORE":     {field: "ignore", typ: envTypeSlice, help: "Comma-separated list of ignore patterns"},
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadFromEnv applies JAPARSE_* overrides from the process environment.
func LoadFromEnv(cfg *config.Config) error {
	return LoadFromLookup(cfg, os.LookupEnv)
}

// LoadFromLookup applies JAPARSE_* overrides resolved through lookup.
//
// Flags that are set but empty count as false; every other empty variable
// is treated as unset.
func LoadFromLookup(cfg *config.Config, lookup LookupFunc) error {
	if cfg == nil {
		return nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || (value == "" && mapping.typ != envTypeFlag) {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeFlag:
		return setFlagField(cfg, mapping.field, config.Truthy(value))
	case envTypeInt:
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue splits a comma-separated string, trimming each element
// and dropping empty ones.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(strings.ToLower(value))
	case "color":
		cfg.Color = config.ColorMode(strings.ToLower(value))
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setFlagField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "position":
		cfg.Position = config.FlagOf(value)
	case "compact":
		cfg.Compact = config.FlagOf(value)
	default:
		return fmt.Errorf("unknown flag field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "extensions":
		cfg.Extensions = value
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported environment variable with a description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
