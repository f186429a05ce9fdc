package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okralabs/bulletlint/internal/configloader"
	"github.com/okralabs/bulletlint/internal/logging"
	"github.com/okralabs/bulletlint/pkg/config"
	"github.com/okralabs/bulletlint/pkg/lint"
	"github.com/okralabs/bulletlint/pkg/lint/rules"
	goldmarkparser "github.com/okralabs/bulletlint/pkg/parser/goldmark"
	"github.com/okralabs/bulletlint/pkg/reporter"
	"github.com/okralabs/bulletlint/pkg/runner"
)

type lintFlags struct {
	format         string
	flavor         string
	style          string
	ignore         []string
	enable         []string
	disable        []string
	strict         bool
	noContext      bool
	compact        bool
	followSymlinks bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files for bullet marker issues",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint Markdown files for inconsistent unordered list markers.

By default, lints all Markdown files in the current directory and
subdirectories. Specify paths to lint specific files or directories.

Examples:
  bulletlint lint                    # Lint current directory
  bulletlint lint docs/              # Lint docs directory
  bulletlint lint README.md          # Lint single file
  bulletlint lint --fix              # Lint and rewrite bad markers
  bulletlint lint --fix --dry-run    # Show fixes without applying
  bulletlint lint --style "-"        # Require dashes everywhere
  bulletlint lint --style sublist    # Cycle markers by nesting depth
  bulletlint lint --format json      # Output as JSON for CI
  bulletlint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. Only values the user set
	// explicitly become CLI overrides; everything else defers to config
	// files and environment.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("style") {
		cfg.Rules = map[string]config.RuleConfig{
			rules.BulletStyleRuleID: {
				Options: map[string]any{"style": flags.style},
			},
		}
	}
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFlavor, finalCfg.Flavor,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	parser := goldmarkparser.New(string(finalCfg.Flavor))
	engine := lint.NewEngine(parser, lint.DefaultRegistry)
	pipeline := lint.NewPipeline(engine)
	lintRunner := runner.New(pipeline)

	runOpts := runner.OptionsFromConfig(finalCfg, args)
	runOpts.WorkingDir = workDir
	runOpts.FollowSymlinks = flags.followSymlinks

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.FormatFromConfig(finalCfg.Format),
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return &ExitError{Code: exitCode}
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.style, "style", "consistent",
		`expected bullet style: consistent, sublist, or a literal "-", "*", "+"`)
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow directory symlinks during discovery")
}
