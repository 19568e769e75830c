// Package cli provides the Cobra command structure for japarse.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/japarse/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Global flag names read by subcommands.
const (
	flagConfig = "config"
	flagColor  = "color"
	flagDebug  = "debug"
)

// NewRootCommand creates the root japarse command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "japarse",
		Short: "Parse Japanese text into an NLCST syntax tree",
		Long: `japarse turns plain Japanese text into an NLCST syntax tree.

Every line becomes a Paragraph holding the line's text and a line break.
Halfwidth symbols such as ｡ and ｢ are widened to their fullwidth forms,
and every node can carry line, column and offset positions. Trees are
written as JSON, YAML, an indented outline, or plain text.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, flagColor, "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
