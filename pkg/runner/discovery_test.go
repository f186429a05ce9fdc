package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okralabs/bulletlint/pkg/config"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
}

func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_MarkdownOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":         "- a\n",
		"b.markdown":   "- b\n",
		"notes.txt":    "not markdown\n",
		"main.go":      "package main\n",
		"docs/deep.md": "- deep\n",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, dir, files)
	want := []string{"a.md", "b.markdown", "docs/deep.md"}
	if len(got) != len(want) {
		t.Fatalf("Discover() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Discover()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiscover_HiddenDirsSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"visible.md":     "- a\n",
		".git/hidden.md": "- b\n",
		".secret.md":     "- c\n",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Discover() returned %d files, want 1: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "visible.md" {
		t.Errorf("Discover() = %v, want visible.md only", files)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"keep.md":          "- a\n",
		"vendor/skip.md":   "- b\n",
		"docs/skipped.md":  "- c\n",
		"docs/sub/also.md": "- d\n",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "docs/**"},
		Config:       config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Discover() returned %d files, want 1: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "keep.md" {
		t.Errorf("Discover() = %v, want keep.md only", files)
	}
}

func TestDiscover_ExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"doc.md":   "- a\n",
		"main.go":  "package main\n",
		"plain.md": "- b\n",
	})

	// Explicit Markdown file is accepted; explicit Go source is not.
	files, err := Discover(context.Background(), Options{
		Paths:      []string{"doc.md", "main.go"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Discover() returned %d files, want 1: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "doc.md" {
		t.Errorf("Discover() = %v, want doc.md only", files)
	}
}

func TestDiscover_Dedupe(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"doc.md": "- a\n"})

	files, err := Discover(context.Background(), Options{
		Paths:      []string{".", "doc.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Errorf("Discover() returned %d files, want 1 after dedupe: %v", len(files), files)
	}
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"doc.md", "*.md", true},
		{"doc.txt", "*.md", false},
		{"docs/guide.md", "*.md", true}, // basename fallback
		{"vendor/lib/doc.md", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"src/vendor.md", "vendor/**", false},
		{"a/b/node_modules/x.md", "**/node_modules", true},
		{"docs/api/ref.md", "docs/**/ref.md", true},
		{"docs/api/other.md", "docs/**/ref.md", false},
		{"anything/at/all.md", "**", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.path, func(t *testing.T) {
			t.Parallel()

			if got := matchGlob(tt.path, tt.pattern); got != tt.want {
				t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}
