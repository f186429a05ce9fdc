// Package reporter provides diagnostic and diff reporting functionality.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/okralabs/bulletlint/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}

// displayPath makes path relative to workDir for display.
// Paths that would climb more than two levels keep only their basename.
func displayPath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
