package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/japarse/internal/ui/pretty"
	"github.com/yaklabco/japarse/pkg/runner"
)

// InspectReporter writes each tree as an indented outline.
type InspectReporter struct {
	opts   Options
	styles *pretty.Styles
	tree   *pretty.TreeFormatter
	bw     *bufio.Writer
}

// NewInspectReporter creates a new inspect reporter.
func NewInspectReporter(opts Options) *InspectReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &InspectReporter{
		opts:   opts,
		styles: styles,
		tree:   pretty.NewTreeFormatter(styles, opts.MaxValueWidth),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *InspectReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	_, bare := bareOutcome(result, r.opts)
	written := 0

	for _, file := range result.Files {
		if ctx.Err() != nil {
			return written, fmt.Errorf("report cancelled: %w", ctx.Err())
		}
		if file.Error != nil {
			if err := writeFileError(r.opts, file); err != nil {
				return written, err
			}
			continue
		}

		if !bare {
			if written > 0 {
				fmt.Fprintln(r.bw)
			}
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(r.opts.displayPath(file.Path)))
		}
		fmt.Fprint(r.bw, r.tree.Format(file.Root))
		written++
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return written, nil
}
