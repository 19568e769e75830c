package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/japarse/internal/ui/pretty"
	"github.com/yaklabco/japarse/pkg/runner"
)

// SummaryReporter writes a per-file statistics table and run totals
// instead of trees.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to parse."))
		return 0, nil
	}

	relative := &runner.Result{Stats: result.Stats, Files: make([]runner.FileOutcome, 0, len(result.Files))}
	for _, file := range result.Files {
		file.Path = r.opts.displayPath(file.Path)
		relative.Files = append(relative.Files, file)
	}

	table := pretty.NewTableFormatter(r.styles, r.opts.TermWidth)
	fmt.Fprint(r.bw, table.FormatTable(relative))
	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return countTrees(result), nil
}
