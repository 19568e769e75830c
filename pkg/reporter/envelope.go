package reporter

import (
	"github.com/yaklabco/japarse/pkg/nlcst"
	"github.com/yaklabco/japarse/pkg/runner"
)

// envelopeVersion versions the multi-file document layout.
const envelopeVersion = "1.0.0"

// Envelope is the multi-file document written by the json and yaml formats.
type Envelope struct {
	Version string      `json:"version" yaml:"version"`
	Files   []FileEntry `json:"files" yaml:"files"`
	Summary Summary     `json:"summary" yaml:"summary"`
}

// FileEntry carries either a tree or the reason there is none.
type FileEntry struct {
	Path  string      `json:"path" yaml:"path"`
	Tree  *nlcst.Node `json:"tree,omitempty" yaml:"tree,omitempty"`
	Error string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary contains aggregate statistics.
type Summary struct {
	FilesParsed     int `json:"filesParsed" yaml:"filesParsed"`
	FilesErrored    int `json:"filesErrored" yaml:"filesErrored"`
	Paragraphs      int `json:"paragraphs" yaml:"paragraphs"`
	BlankParagraphs int `json:"blankParagraphs" yaml:"blankParagraphs"`
	CharUnits       int `json:"charUnits" yaml:"charUnits"`
}

func buildEnvelope(result *runner.Result, opts Options) *Envelope {
	envelope := &Envelope{
		Version: envelopeVersion,
		Files:   make([]FileEntry, 0),
	}
	if result == nil {
		return envelope
	}

	envelope.Files = make([]FileEntry, 0, len(result.Files))
	for _, file := range result.Files {
		entry := FileEntry{Path: opts.displayPath(file.Path), Tree: file.Root}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		envelope.Files = append(envelope.Files, entry)
	}

	envelope.Summary = Summary{
		FilesParsed:     result.Stats.FilesParsed,
		FilesErrored:    result.Stats.FilesErrored,
		Paragraphs:      result.Stats.Paragraphs,
		BlankParagraphs: result.Stats.BlankParagraphs,
		CharUnits:       result.Stats.CharUnits,
	}
	return envelope
}

// bareOutcome returns the single outcome to write as a bare tree, if the
// options and result allow one.
func bareOutcome(result *runner.Result, opts Options) (runner.FileOutcome, bool) {
	if opts.Envelope || result == nil || len(result.Files) != 1 {
		return runner.FileOutcome{}, false
	}
	return result.Files[0], true
}

// countTrees returns the number of outcomes that produced a tree.
func countTrees(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.FilesParsed
}
