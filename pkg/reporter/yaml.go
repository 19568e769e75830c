package reporter

import (
	"bufio"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/japarse/pkg/runner"
)

// yamlIndent is the indentation of yaml output.
const yamlIndent = 2

// YAMLReporter writes trees as YAML.
type YAMLReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewYAMLReporter creates a new YAML reporter.
func NewYAMLReporter(opts Options) *YAMLReporter {
	return &YAMLReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *YAMLReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := yaml.NewEncoder(r.bw)
	encoder.SetIndent(yamlIndent)

	var value any = buildEnvelope(result, r.opts)
	count := countTrees(result)

	if outcome, ok := bareOutcome(result, r.opts); ok {
		if outcome.Error != nil {
			return 0, writeFileError(r.opts, outcome)
		}
		value, count = outcome.Root, 1
	}

	if err := encoder.Encode(value); err != nil {
		return 0, fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("close YAML encoder: %w", err)
	}
	return count, nil
}
