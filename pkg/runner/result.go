package runner

import (
	"github.com/yaklabco/japarse/pkg/japanese"
	"github.com/yaklabco/japarse/pkg/nlcst"
)

// FileOutcome is the parse result for one document.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Root is the parsed tree. Nil when Error is set.
	Root *nlcst.Node

	// Stats describes Root.
	Stats DocumentStats

	// Error is set if the file could not be read or parsed.
	Error error
}

// DocumentStats summarizes a single tree.
type DocumentStats struct {
	// Paragraphs is the number of Paragraph children of Root, one per line.
	Paragraphs int

	// BlankParagraphs counts paragraphs with no Text, only a line break.
	BlankParagraphs int

	// CharUnits is the number of code points across all leaves, line
	// breaks included. With positions on this equals Root's end offset.
	CharUnits int
}

// Measure computes DocumentStats for a Root node.
func Measure(root *nlcst.Node) DocumentStats {
	var stats DocumentStats
	if root == nil {
		return stats
	}

	// A blank line's paragraph holds only its line break.
	for _, paragraph := range nlcst.FindByKind(root, nlcst.KindParagraph) {
		stats.Paragraphs++
		if paragraph.ChildCount() == 1 {
			stats.BlankParagraphs++
		}
	}
	stats.CharUnits = japanese.CharUnitLength(root.Text())

	return stats
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files that produced a tree.
	FilesParsed int

	// FilesErrored is the number of files that could not be parsed.
	FilesErrored int

	Paragraphs      int
	BlankParagraphs int
	CharUnits       int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to parse.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++
	r.Stats.Paragraphs += outcome.Stats.Paragraphs
	r.Stats.BlankParagraphs += outcome.Stats.BlankParagraphs
	r.Stats.CharUnits += outcome.Stats.CharUnits
}

// ResultOf wraps outcomes that were produced outside Run, such as a
// document read from standard input.
func ResultOf(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}
