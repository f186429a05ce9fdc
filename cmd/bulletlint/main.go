// Package main is the entry point for the bulletlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/okralabs/bulletlint/internal/cli"
	"github.com/okralabs/bulletlint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/okralabs/bulletlint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Lint findings carry their exit code; they are not failures to log.
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
