// Package cli provides the Cobra command structure for bulletlint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/okralabs/bulletlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root bulletlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "bulletlint",
		Short: "A fast, self-fixing linter for Markdown bullet markers",
		Long: `bulletlint checks unordered list markers in Markdown files and fixes
inconsistent ones.

Markdown allows "-", "*", and "+" as bullet markers; mixing them in one
document parses as separate lists and renders inconsistently. bulletlint
enforces a single style per document (or a per-nesting-level cycle) and
can rewrite offending markers in place, with dry-run mode and optional
backups for safety.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
