// Package sniff classifies input files before they reach the parser.
// It uses go-enry heuristics to keep binary blobs and vendored trees out of
// a parse run.
package sniff

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// IsBinary reports whether content looks like binary data.
// Empty content is text.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	return enry.IsBinary(content)
}

// IsVendored reports whether path belongs to a vendored or generated
// dependency tree (vendor/, node_modules/, ...).
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// IsHidden reports whether the base name of path is a dot file.
func IsHidden(path string) bool {
	return enry.IsDotFile(filepath.ToSlash(path))
}

// Skip reports whether discovery should pass over path.
func Skip(path string) bool {
	return IsVendored(path) || IsHidden(path)
}
