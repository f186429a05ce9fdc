package runner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okralabs/bulletlint/pkg/langdetect"
)

// explicitSniffLimit caps how many bytes are read when sniffing an
// explicitly named file with an unrecognized extension.
const explicitSniffLimit = 8 * 1024

// Discover finds Markdown files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute paths.
//
// Directory walks admit files by name only (via langdetect.IsMarkdownPath).
// Files named explicitly on the command line get a second chance: when the
// name is inconclusive their content is sniffed, so extensionless README
// files can still be linted directly.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				add(f)
			}
			continue
		}

		if matchesExplicitFile(absPath, workDir, opts) {
			add(absPath)
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching files.
func walkDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := relativeTo(workDir, path)

		if entry.IsDir() {
			// Skip hidden directories (except root).
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAny(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				// Broken symlink.
				return nil
			}
			target, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil
			}
			if target.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target, not the link, so WalkDir's Lstat-based
				// traversal cannot recurse through the link itself.
				subFiles, err := walkDirectory(ctx, realPath, workDir, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
			// File symlink: fall through to the regular file checks.
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesWalkedFile(path, relPath, opts) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesWalkedFile checks whether a file found during a directory walk
// should be linted. Name-based Markdown detection only.
func matchesWalkedFile(path, relPath string, opts Options) bool {
	if !langdetect.IsMarkdownPath(path) {
		return false
	}
	return matchesGlobFilters(relPath, opts)
}

// matchesExplicitFile checks whether an explicitly named file should be
// linted. Falls back to content sniffing when the name is inconclusive.
func matchesExplicitFile(path, workDir string, opts Options) bool {
	if !matchesGlobFilters(relativeTo(workDir, path), opts) {
		return false
	}
	if langdetect.IsMarkdownPath(path) {
		return true
	}
	return langdetect.IsMarkdown(path, readHead(path, explicitSniffLimit))
}

// matchesGlobFilters applies the include and exclude glob sets.
func matchesGlobFilters(relPath string, opts Options) bool {
	if matchesAny(relPath, opts.ExcludeGlobs) {
		return false
	}
	if len(opts.IncludeGlobs) > 0 && !matchesAny(relPath, opts.IncludeGlobs) {
		return false
	}
	return true
}

// relativeTo returns path relative to base, or path itself if that fails.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

// readHead reads at most limit bytes from the start of the file.
// Returns nil on any error; callers treat that as "no content".
func readHead(path string, limit int) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, limit)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil
	}
	return head[:n]
}

// matchesAny checks whether the path matches any of the glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
// Supports simple patterns like "*.md" as well as "docs/**" and "**/vendor".
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	// Also try matching against just the filename.
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStar handles patterns containing "**".
func matchDoubleStar(path, pattern string) bool {
	before, after, _ := strings.Cut(pattern, "**")
	prefix := strings.TrimSuffix(before, "/")
	suffix := strings.TrimPrefix(after, "/")

	switch {
	case prefix == "" && suffix == "":
		// Bare "**" matches everything.
		return true

	case prefix == "":
		// "**/name": name anywhere in the path.
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, part); err == nil && matched {
				return true
			}
		}
		return false

	case suffix == "":
		// "dir/**": anything under dir.
		return path == prefix || strings.HasPrefix(path, prefix+"/")

	default:
		// "dir/**/name": prefix anchors the start, suffix the end.
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		if strings.HasSuffix(path, suffix) {
			return true
		}
		matched, err := filepath.Match(suffix, filepath.Base(path))
		return err == nil && matched
	}
}
