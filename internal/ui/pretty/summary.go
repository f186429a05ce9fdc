package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okralabs/bulletlint/pkg/runner"
)

const (
	maxDividerWidth = 40
	wordFile        = "file"
	wordFiles       = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 issues (1 error, 2 warnings) in 2 files, 3 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		// Show fixes applied even when no issues remain.
		if stats.DiagnosticsFixed > 0 {
			fileWord := wordFiles
			if stats.FilesModified == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %d %s",
				stats.DiagnosticsFixed, stats.FilesModified, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	issueWord := "issues"
	if stats.DiagnosticsTotal == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(pluralize(errors, "error")))
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(pluralize(warnings, "warning")))
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)",
			stats.DiagnosticsTotal, issueWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord))
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}

	if stats.DiagnosticsFixed > 0 {
		fixedFileWord := wordFiles
		if stats.FilesModified == 1 {
			fixedFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %d %s",
			stats.DiagnosticsFixed, stats.FilesModified, fixedFileWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
// The divider is sized to the writer's terminal, capped at maxDividerWidth.
func (s *Styles) FormatSummary(stats runner.Stats, writer io.Writer) string {
	var builder strings.Builder

	dividerWidth := TerminalWidth(writer)
	if dividerWidth > maxDividerWidth {
		dividerWidth = maxDividerWidth
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", dividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:    " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:          " + s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:        " + s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:            " + s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.DiagnosticsBySeverity["error"] > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case stats.DiagnosticsBySeverity["warning"] > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// pluralize renders a count with a simple s-plural noun.
func pluralize(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
