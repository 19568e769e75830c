package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/japarse/pkg/runner"
)

// TextReporter writes the normalized text carried by each tree, which is
// the input with halfwidth symbols widened and line endings unified.
type TextReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
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
			fmt.Fprintf(r.bw, "==> %s <==\n", r.opts.displayPath(file.Path))
		}
		fmt.Fprint(r.bw, file.Root.Text())
		written++
	}

	return written, nil
}
