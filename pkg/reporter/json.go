package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/okralabs/bulletlint/pkg/lint"
	"github.com/okralabs/bulletlint/pkg/runner"
)

// severityWarning is the fallback severity for unlabeled diagnostics.
const severityWarning = "warning"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Modified    bool             `json:"modified,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID      string    `json:"ruleId"`
	RuleName    string    `json:"ruleName"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	StartLine   int       `json:"startLine"`
	StartColumn int       `json:"startColumn"`
	EndLine     int       `json:"endLine"`
	EndColumn   int       `json:"endColumn"`
	Suggestion  string    `json:"suggestion,omitempty"`
	Fixable     bool      `json:"fixable"`
	Fixes       []JSONFix `json:"fixes,omitempty"`
}

// JSONFix represents a proposed fix.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

// buildOutput converts a runner result into the wire shape. Files keeps
// the runner's path ordering so output is stable across runs.
func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for i := range result.Files {
		fileResult := r.convertFile(&result.Files[i])
		tallyFile(&output.Summary, fileResult)
		output.Files = append(output.Files, fileResult)
	}

	return output
}

// convertFile flattens one file outcome, including its diagnostics.
func (r *JSONReporter) convertFile(outcome *runner.FileOutcome) JSONFileResult {
	fileResult := JSONFileResult{
		Path:        displayPath(outcome.Path, r.opts.WorkingDir),
		Diagnostics: make([]JSONDiagnostic, 0),
	}

	if outcome.Error != nil {
		fileResult.Error = outcome.Error.Error()
	}

	if outcome.Result == nil {
		return fileResult
	}

	fileResult.Modified = outcome.Result.Written

	if outcome.Result.FileResult == nil {
		return fileResult
	}

	for _, diag := range outcome.Result.Diagnostics {
		fileResult.Diagnostics = append(fileResult.Diagnostics, convertDiagnostic(diag))
	}

	return fileResult
}

// convertDiagnostic maps a diagnostic onto its wire shape.
func convertDiagnostic(diag lint.Diagnostic) JSONDiagnostic {
	jsonDiag := JSONDiagnostic{
		RuleID:      diag.RuleID,
		RuleName:    diag.RuleName,
		Severity:    string(diag.Severity),
		Message:     diag.Message,
		StartLine:   diag.StartLine,
		StartColumn: diag.StartColumn,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
		Suggestion:  diag.Suggestion,
		Fixable:     len(diag.FixEdits) > 0,
	}

	for _, edit := range diag.FixEdits {
		jsonDiag.Fixes = append(jsonDiag.Fixes, JSONFix{
			StartOffset: edit.StartOffset,
			EndOffset:   edit.EndOffset,
			NewText:     edit.NewText,
		})
	}

	return jsonDiag
}

// tallyFile folds one converted file into the summary counters.
func tallyFile(summary *JSONSummary, fileResult JSONFileResult) {
	summary.FilesChecked++

	if fileResult.Error != "" {
		summary.FilesErrored++
	}
	if fileResult.Modified {
		summary.FilesModified++
	}
	if len(fileResult.Diagnostics) > 0 {
		summary.FilesWithIssues++
	}

	for _, diag := range fileResult.Diagnostics {
		summary.TotalIssues++

		severity := diag.Severity
		if severity == "" {
			severity = severityWarning
		}
		summary.BySeverity[severity]++
	}
}
