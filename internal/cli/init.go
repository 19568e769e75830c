package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/japarse/internal/logging"
	"github.com/yaklabco/japarse/pkg/config"
	"github.com/yaklabco/japarse/pkg/fsutil"
)

// Default file names written by init.
const (
	initYAMLFile = ".japarse.yml"
	initJSONFile = "japarse.json"
)

type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a japarse configuration file",
		Long: `Create a .japarse.yml configuration file in the current directory
holding the default settings. japarse finds it automatically when run
from this directory or any directory below it.

Examples:
  japarse init                      Create .japarse.yml
  japarse init --format json        Create japarse.json (use with --config)
  japarse init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "file format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .japarse.yml or japarse.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()

	if flags.format != "yaml" && flags.format != "json" {
		return withExitCode(ExitInvalidUsage,
			fmt.Errorf("invalid format %q: must be yaml or json", flags.format))
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = initYAMLFile
		if flags.format == "json" {
			outputPath = initJSONFile
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: flags.format})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if flags.force && fsutil.Exists(absPath) {
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	err = fsutil.WriteNew(commandContext(cmd), absPath, content, flags.force)
	switch {
	case errors.Is(err, fsutil.ErrExists):
		return withExitCode(ExitIOError,
			fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
	case err != nil:
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.format == "json" {
		logger.Info("json files are not discovered automatically; pass it with --config")
	}

	return nil
}
