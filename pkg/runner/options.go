// Package runner parses many documents concurrently.
package runner

import (
	"strings"

	"github.com/yaklabco/japarse/pkg/config"
	"github.com/yaklabco/japarse/pkg/japanese"
)

// Options controls a multi-file parse run.
type Options struct {
	// Paths are the user-specified files or directories. Empty means ".".
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions selects files when walking a directory. Files named
	// explicitly in Paths are parsed whatever their extension.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the worker count; 0 or negative means runtime.NumCPU().
	Jobs int
}

// OptionsFromConfig builds run options for paths from a resolved config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}
}

// ParserOptionsFromConfig maps config onto parser options.
func ParserOptionsFromConfig(cfg *config.Config) japanese.Options {
	return japanese.Options{NoPosition: !cfg.PositionEnabled()}
}

// DefaultExtensions returns the extensions used when none are configured.
func DefaultExtensions() []string {
	return []string{config.DefaultExtension}
}

// effectiveExtensions lowercases extensions and adds a missing leading dot.
func (o Options) effectiveExtensions() []string {
	if o.Extensions == nil {
		return DefaultExtensions()
	}
	exts := make([]string, 0, len(o.Extensions))
	for _, ext := range o.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
