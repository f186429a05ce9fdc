// Package runner provides multi-file linting orchestration.
package runner

import "github.com/okralabs/bulletlint/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include every Markdown file".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// OptionsFromConfig builds runner options from a resolved configuration.
// Paths come from the CLI and are set by the caller.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	return Options{
		Paths:        paths,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}
}
