package pretty

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// DisplayWidth returns the number of terminal cells s occupies. East Asian
// wide characters count as two cells.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate shortens s to at most maxWidth cells, cutting on grapheme
// cluster boundaries and appending an ellipsis when anything was removed.
// A maxWidth of zero or less disables truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	budget := maxWidth - uniseg.StringWidth(ellipsis)
	var builder strings.Builder
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width > budget {
			break
		}
		budget -= width
		builder.WriteString(cluster)
	}

	return builder.String() + ellipsis
}

// TruncateLeft shortens s from the left, keeping its tail. Used for file
// paths where the name matters more than the directory.
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 || uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var clusters []string
	var widths []int
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
		widths = append(widths, width)
	}

	budget := maxWidth - uniseg.StringWidth(ellipsis)
	start := len(clusters)
	for start > 0 && widths[start-1] <= budget {
		budget -= widths[start-1]
		start--
	}

	return ellipsis + strings.Join(clusters[start:], "")
}

// PadRight pads s with trailing spaces to width display cells.
func PadRight(s string, width int) string {
	return s + fill(s, width)
}

// PadLeft pads s with leading spaces to width display cells.
func PadLeft(s string, width int) string {
	return fill(s, width) + s
}

// fill returns the spaces needed to bring s up to width display cells.
func fill(s string, width int) string {
	if gap := width - uniseg.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap)
	}
	return ""
}
