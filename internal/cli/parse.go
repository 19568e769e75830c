package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/japarse/internal/configloader"
	"github.com/yaklabco/japarse/internal/logging"
	"github.com/yaklabco/japarse/pkg/config"
	"github.com/yaklabco/japarse/pkg/fsutil"
	"github.com/yaklabco/japarse/pkg/reporter"
	"github.com/yaklabco/japarse/pkg/runner"
	"github.com/yaklabco/japarse/pkg/vfile"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

type parseFlags struct {
	format        string
	noPosition    bool
	compact       bool
	envelope      bool
	summary       bool
	output        string
	jobs          int
	ignore        []string
	extensions    []string
	maxValueWidth int
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse text files into NLCST trees",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	addParseFlags(cmd, flags)

	return cmd
}

const parseLongDescription = `Parse Japanese text files into NLCST syntax trees.

With no arguments, japarse reads standard input when it is piped and
otherwise parses every .txt file below the current directory. Use "-"
to read standard input explicitly.

A single file is written as a bare tree. Several files, or a directory,
are wrapped in an envelope listing each file and a summary.

Examples:
  japarse parse doc.txt                 # JSON tree with positions
  cat doc.txt | japarse parse           # Parse standard input
  japarse parse --format inspect doc.txt
  japarse parse --no-position --compact doc.txt
  japarse parse --format summary docs/  # Statistics per file
  japarse parse -o tree.json doc.txt    # Write to a file`

func addParseFlags(cmd *cobra.Command, flags *parseFlags) {
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatJSON),
		"output format: json, yaml, inspect, text, summary")
	cmd.Flags().BoolVar(&flags.noPosition, "no-position", false, "omit positions from every node")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "write json on a single line")
	cmd.Flags().BoolVar(&flags.envelope, "envelope", false, "wrap a single tree in the multi-file envelope")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "append a one-line summary to inspect output")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions collected from directories (default .txt)")
	cmd.Flags().IntVar(&flags.maxValueWidth, "max-value-width", 0,
		"truncate values in inspect output to this many cells (0 = never)")
}

// cliConfig captures only the flags the user actually set, so unset flags
// do not override lower configuration layers.
func cliConfig(cmd *cobra.Command, flags *parseFlags) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("no-position") {
		cfg.Position = config.FlagOf(!flags.noPosition)
	}
	if changed("compact") {
		cfg.Compact = config.FlagOf(flags.compact)
	}
	if changed(flagColor) {
		if color, err := cmd.Flags().GetString(flagColor); err == nil {
			cfg.Color = config.ColorMode(color)
		}
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("extensions") {
		cfg.Extensions = flags.extensions
	}
	cfg.Output = flags.output

	return cfg
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := logging.Default()
	ctx := logging.WithLogger(commandContext(cmd), logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldFormat, cfg.Format,
		logging.FieldPosition, cfg.PositionEnabled(),
		logging.FieldJobs, cfg.Jobs,
	)

	result, multi, err := collect(ctx, cmd, args, cfg, workDir)
	if err != nil {
		return err
	}

	logger.Debug("parse finished",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldParagraphs, result.Stats.Paragraphs,
		logging.FieldCharUnits, result.Stats.CharUnits,
	)

	if err := report(ctx, cmd, result, cfg, flags, multi, workDir); err != nil {
		return err
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrParseFailures
	}
	return nil
}

// collect parses the inputs named by args. multi reports whether the
// output should use the envelope even when only one file turned up.
func collect(
	ctx context.Context, cmd *cobra.Command, args []string, cfg *config.Config, workDir string,
) (*runner.Result, bool, error) {
	parseRunner := runner.New(runner.ParserOptionsFromConfig(cfg))

	if readsStdin(args, cmd.InOrStdin()) {
		if len(args) > 1 {
			return nil, false, withExitCode(ExitInvalidUsage,
				errors.New("standard input cannot be combined with other paths"))
		}
		file, err := vfile.ReadFrom(vfile.StdinPath, cmd.InOrStdin())
		if err != nil {
			if errors.Is(err, fsutil.ErrBinary) {
				return runner.ResultOf(runner.FileOutcome{Path: vfile.StdinPath, Error: err}), false, nil
			}
			return nil, false, withExitCode(ExitIOError, err)
		}
		return runner.ResultOf(parseRunner.ParseFile(file)), false, nil
	}

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	logging.FromContext(ctx).Debug("starting parse run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := parseRunner.Run(ctx, runOpts)
	if err != nil {
		return nil, false, errors.Join(errors.New("parse run failed"), err)
	}

	return result, len(args) != 1 || isDir(workDir, args[0]), nil
}

// readsStdin reports whether input comes from standard input: either "-"
// was named, or nothing was named and stdin is not a terminal.
func readsStdin(args []string, in io.Reader) bool {
	if slices.Contains(args, stdinArg) {
		return true
	}
	if len(args) > 0 {
		return false
	}
	if file, ok := in.(*os.File); ok {
		return !term.IsTerminal(int(file.Fd()))
	}
	return true
}

func isDir(workDir, path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func report(
	ctx context.Context, cmd *cobra.Command, result *runner.Result, cfg *config.Config,
	flags *parseFlags, multi bool, workDir string,
) error {
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid format: %w", err))
	}

	var buf bytes.Buffer
	writer := cmd.OutOrStdout()
	if cfg.Output != "" {
		writer = &buf
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        writer,
		ErrorWriter:   cmd.ErrOrStderr(),
		Format:        format,
		Color:         string(cfg.Color),
		Compact:       cfg.CompactEnabled(),
		Envelope:      flags.envelope || multi,
		ShowSummary:   flags.summary,
		MaxValueWidth: flags.maxValueWidth,
		TermWidth:     terminalWidth(writer),
		WorkingDir:    workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	written, err := rep.Report(ctx, result)
	if err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if cfg.Output == "" {
		return nil
	}
	changed, err := fsutil.WriteAtomicIfChanged(ctx, cfg.Output, buf.Bytes(), 0)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write output: %w", err))
	}
	logger.Log(outputLevel(changed), "wrote output",
		logging.FieldOutput, cfg.Output,
		logging.FieldWritten, written,
	)
	return nil
}

// outputLevel logs unchanged output files at debug level only.
func outputLevel(changed bool) log.Level {
	if changed {
		return log.InfoLevel
	}
	return log.DebugLevel
}

// terminalWidth returns the width of writer when it is a terminal, or 0.
func terminalWidth(writer io.Writer) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
