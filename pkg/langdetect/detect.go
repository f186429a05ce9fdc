// Package langdetect decides whether a file is Markdown.
// It uses go-enry so that Markdown-family extensions (.md, .markdown,
// .mdown, ...) and extensionless files with Markdown content are both
// recognized without hand-maintaining an extension table.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// markdownLanguage is the canonical go-enry name for the Markdown family.
const markdownLanguage = "Markdown"

// sniffLimit caps how much content is passed to content-based detection.
const sniffLimit = 8 * 1024

// MarkdownExtensions returns the common Markdown file extensions,
// lowercase with leading dot. Used for documentation and defaults;
// actual gating goes through IsMarkdownPath.
func MarkdownExtensions() []string {
	return []string{".md", ".markdown", ".mdown", ".mkd", ".mkdn"}
}

// IsMarkdownPath reports whether the path's name identifies a Markdown file.
// It consults go-enry's filename and extension databases.
func IsMarkdownPath(path string) bool {
	for _, lang := range enry.GetLanguages(path, nil) {
		if lang == markdownLanguage {
			return true
		}
	}
	return false
}

// IsMarkdown reports whether the file is Markdown, using the path first
// and falling back to content detection for unrecognized names.
// Content detection is a heuristic; it is only consulted when the name
// gives no answer (e.g. extensionless README files).
func IsMarkdown(path string, content []byte) bool {
	if IsMarkdownPath(path) {
		return true
	}

	if len(content) == 0 {
		return false
	}
	if len(content) > sniffLimit {
		content = content[:sniffLimit]
	}

	lang := enry.GetLanguage(path, content)
	if lang == markdownLanguage {
		return true
	}

	// enry classifies bare prose as Text or similar; accept names that
	// read as documentation when the content is prose rather than code.
	if isDocName(trimExt(path)) {
		return lang == "" || enry.GetLanguageType(lang) == enry.Prose
	}

	return false
}

// isDocName reports whether a bare file name conventionally holds
// Markdown documentation.
func isDocName(base string) bool {
	switch strings.ToUpper(base) {
	case "README", "CHANGELOG", "CONTRIBUTING", "AUTHORS", "NOTICE":
		return true
	default:
		return false
	}
}

// trimExt returns the base name of path without its extension.
func trimExt(path string) string {
	base := path
	if idx := strings.LastIndexAny(base, "/\\"); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	return base
}
