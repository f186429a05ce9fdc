package lint

import "github.com/okralabs/bulletlint/pkg/config"

// RuleInfo is the static metadata a rule declares about itself.
type RuleInfo struct {
	// ID is the unique identifier (e.g., "BL001").
	ID string

	// Name is the human-readable name (e.g., "bullet-style").
	Name string

	// Description says what the rule checks.
	Description string

	// Tags categorize the rule for filtering.
	Tags []string

	// Fixable indicates whether the rule can auto-fix its findings.
	Fixable bool
}

// BaseRule implements the metadata half of the Rule interface from a
// RuleInfo. Embed it in rule implementations and override Apply.
type BaseRule struct {
	info RuleInfo
}

// NewBaseRule creates a BaseRule carrying the given metadata.
func NewBaseRule(info RuleInfo) BaseRule {
	return BaseRule{info: info}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.info.ID
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.info.Name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.info.Description
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.info.Tags
}

// CanFix returns whether this rule can auto-fix issues.
func (r *BaseRule) CanFix() bool {
	return r.info.Fixable
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
