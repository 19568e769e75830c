package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/japarse/internal/ui/pretty"
	"github.com/yaklabco/japarse/pkg/runner"
)

// JSONReporter writes trees as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if outcome, ok := bareOutcome(result, r.opts); ok {
		if outcome.Error != nil {
			return 0, writeFileError(r.opts, outcome)
		}
		if err := encoder.Encode(outcome.Root); err != nil {
			return 0, fmt.Errorf("encode JSON: %w", err)
		}
		return 1, nil
	}

	if err := encoder.Encode(buildEnvelope(result, r.opts)); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return countTrees(result), nil
}

// writeFileError reports a failed outcome on the error writer.
func writeFileError(opts Options, outcome runner.FileOutcome) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter))
	if _, err := fmt.Fprint(opts.ErrorWriter, styles.FormatFileError(opts.displayPath(outcome.Path), outcome.Error)); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
