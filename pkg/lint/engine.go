package lint

import (
	"context"
	"fmt"

	"github.com/okralabs/bulletlint/pkg/config"
	"github.com/okralabs/bulletlint/pkg/fix"
	"github.com/okralabs/bulletlint/pkg/mdast"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *mdast.FileSnapshot

	// Diagnostics contains all issues found.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits ready for auto-fix.
	Edits []fix.TextEdit

	// SkippedEdits contains edits dropped because they overlapped an
	// earlier edit. Earlier edits (by start position) take precedence.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true when any edits were dropped.
	EditConflicts bool

	// RuleErrors maps rule IDs to their execution errors.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses Markdown files into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
//
// A rule error does not abort the file: it is recorded in RuleErrors and
// the remaining rules still run. Fixable edits from auto-fix rules are
// batched, validated, and conflict-filtered into Edits.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	var fixable []fix.TextEdit

	for _, rr := range ResolveRules(e.Registry, cfg) {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("linting cancelled: %w", err)
		}

		diags, err := e.runRule(ctx, rr, snapshot, cfg)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}
		result.Diagnostics = append(result.Diagnostics, diags...)

		if !rr.AutoFix {
			continue
		}
		for _, d := range diags {
			fixable = append(fixable, d.FixEdits...)
		}
	}

	e.prepareEdits(result, fixable, len(content))

	return result, nil
}

// runRule executes one resolved rule and stamps the resolved severity,
// file path, and rule name onto its diagnostics.
func (e *Engine) runRule(
	ctx context.Context,
	rr ResolvedRule,
	snapshot *mdast.FileSnapshot,
	cfg *config.Config,
) ([]Diagnostic, error) {
	ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
	ruleCtx.Registry = e.Registry

	diags, err := rr.Rule.Apply(ruleCtx)
	if err != nil {
		return nil, err
	}

	for i := range diags {
		diags[i].Severity = rr.Severity
		if diags[i].FilePath == "" {
			diags[i].FilePath = snapshot.Path
		}
		if diags[i].RuleName == "" {
			diags[i].RuleName = rr.Rule.Name()
		}
	}

	return diags, nil
}

// prepareEdits validates and sorts the fixable edits, dropping overlaps.
// A validation failure clears the batch; the diagnostics stand either way.
func (e *Engine) prepareEdits(result *FileResult, edits []fix.TextEdit, contentLen int) {
	if len(edits) == 0 {
		return
	}

	accepted, skipped, err := fix.PrepareEditsFiltered(edits, contentLen)
	if err != nil {
		result.Edits = nil
		result.SkippedEdits = nil
		result.EditConflicts = true
		return
	}

	result.Edits = accepted
	result.SkippedEdits = skipped
	result.EditConflicts = len(skipped) > 0
}
