package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/japarse/internal/logging"
	"github.com/yaklabco/japarse/pkg/japanese"
	"github.com/yaklabco/japarse/pkg/vfile"
)

// Runner parses documents with a shared set of parser options.
type Runner struct {
	// ParserOptions configures the Parser each worker owns.
	ParserOptions japanese.Options
}

// New creates a Runner.
func New(parserOpts japanese.Options) *Runner {
	return &Runner{ParserOptions: parserOpts}
}

// Run discovers files under opts.Paths and parses them concurrently.
// Each worker owns one Parser; outcomes are returned in path order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("run complete",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldParagraphs, result.Stats.Paragraphs,
	)

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	parser := japanese.New(japanese.Input{}, r.ParserOptions)

	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fileCtx := logging.With(ctx, logging.FieldPath, path)

		outcome := FileOutcome{Path: path}
		file, err := vfile.Read(fileCtx, path)
		if err != nil {
			outcome.Error = err
		} else {
			outcome = parseWith(parser, file)
		}
		if outcome.Error != nil {
			logging.FromContext(fileCtx).Debug("file failed", logging.FieldError, outcome.Error)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ParseFile parses one in-memory document.
func (r *Runner) ParseFile(file *vfile.File) FileOutcome {
	return parseWith(japanese.New(japanese.Input{}, r.ParserOptions), file)
}

func parseWith(parser *japanese.Parser, file *vfile.File) FileOutcome {
	outcome := FileOutcome{Path: file.Name()}

	root, err := parser.Parse(file.String())
	if err != nil {
		outcome.Error = fmt.Errorf("parse %s: %w", file.Name(), err)
		return outcome
	}

	outcome.Root = root
	outcome.Stats = Measure(root)
	return outcome
}
