package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/okralabs/bulletlint/pkg/config"
	"github.com/okralabs/bulletlint/pkg/lint"
	"github.com/okralabs/bulletlint/pkg/runner"
)

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{"always", "always", true},
		{"never", "never", false},
		{"auto with non-tty writer", "auto", false},
		{"empty mode with non-tty writer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := IsColorEnabled(tt.mode, &buf); got != tt.want {
				t.Errorf("IsColorEnabled(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	if IsColorEnabled("auto", &buf) {
		t.Error("IsColorEnabled should be false when NO_COLOR is set")
	}
	if !IsColorEnabled("always", &buf) {
		t.Error("always mode overrides NO_COLOR")
	}
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if got := TerminalWidth(&buf); got != defaultWidth {
		t.Errorf("TerminalWidth(non-tty) = %d, want %d", got, defaultWidth)
	}
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	diag := &lint.Diagnostic{
		RuleID:      "BL001",
		RuleName:    "bullet-style",
		Message:     "Unordered list marker style should be '-'.",
		Severity:    config.SeverityWarning,
		FilePath:    "doc.md",
		StartLine:   2,
		StartColumn: 1,
		Suggestion:  "Replace '*' with '-'",
	}

	out := styles.FormatDiagnostic(diag, true, "* b")

	for _, want := range []string{"doc.md:2:1", "warning", "(bullet-style)", "* b", "^", "Suggestion:"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDiagnostic() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatDiagnostic_NoContext(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	diag := &lint.Diagnostic{
		RuleID:      "BL001",
		Message:     "msg",
		Severity:    config.SeverityError,
		FilePath:    "doc.md",
		StartLine:   1,
		StartColumn: 1,
	}

	out := styles.FormatDiagnostic(diag, false, "")

	if strings.Contains(out, "^") {
		t.Errorf("unexpected caret without context:\n%s", out)
	}
	if !strings.Contains(out, "(BL001)") {
		t.Errorf("rule ID fallback missing:\n%s", out)
	}
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	tests := []struct {
		sev  config.Severity
		want string
	}{
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
	}

	for _, tt := range tests {
		if got := styles.FormatSeverity(tt.sev); got != tt.want {
			t.Errorf("FormatSeverity(%v) = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	t.Run("no issues", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 3})
		if !strings.Contains(out, "No issues found") {
			t.Errorf("missing success message: %q", out)
		}
		if !strings.Contains(out, "3 files checked") {
			t.Errorf("missing file count: %q", out)
		}
	})

	t.Run("with issues", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummaryOneLine(runner.Stats{
			DiagnosticsTotal:      3,
			DiagnosticsFixable:    3,
			FilesWithIssues:       2,
			DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 2},
		})

		for _, want := range []string{"3 issues", "1 error", "2 warnings", "in 2 files", "3 fixable"} {
			if !strings.Contains(out, want) {
				t.Errorf("FormatSummaryOneLine() missing %q in %q", want, out)
			}
		}
	})

	t.Run("fixed", func(t *testing.T) {
		t.Parallel()

		out := styles.FormatSummaryOneLine(runner.Stats{
			FilesProcessed:        2,
			FilesModified:         1,
			DiagnosticsFixed:      2,
			DiagnosticsBySeverity: map[string]int{},
		})
		if !strings.Contains(out, "2 fixed in 1 file") {
			t.Errorf("missing fixed count: %q", out)
		}
	})
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	var buf bytes.Buffer

	out := styles.FormatSummary(runner.Stats{
		FilesProcessed:        2,
		FilesWithIssues:       1,
		DiagnosticsTotal:      2,
		DiagnosticsBySeverity: map[string]int{"warning": 2},
	}, &buf)

	for _, want := range []string{"Summary", "Files checked:", "Total issues:", "Lint completed with warnings"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatSummary() missing %q", want)
		}
	}
}
