package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/okralabs/bulletlint/pkg/config"
	"github.com/okralabs/bulletlint/pkg/lint"
	"github.com/okralabs/bulletlint/pkg/lint/rules"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.BL001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownSeverities = map[string]bool{
	"error":   true,
	"warning": true,
	"info":    true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFlavors = map[config.Flavor]bool{
	config.FlavorCommonMark: true,
	config.FlavorGFM:        true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
	config.FormatDiff: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Flavor != "" && !knownFlavors[cfg.Flavor] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "flavor",
			Value:   cfg.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor),
		})
	}

	if cfg.SeverityDefault != "" && !knownSeverities[cfg.SeverityDefault] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity_default",
			Value:   cfg.SeverityDefault,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, diff", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateRules(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateRules checks rule configurations for errors and warnings.
func validateRules(cfg *config.Config, result *ValidationResult) {
	registry := lint.DefaultRegistry

	for ruleKey, ruleCfg := range cfg.Rules {
		canonicalID, _, found := registry.Resolve(ruleKey)
		if !found {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + ruleKey,
				Value:   ruleKey,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", ruleKey),
			})
			continue
		}

		if ruleCfg.Severity != nil && !knownSeverities[*ruleCfg.Severity] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rules." + ruleKey + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity),
			})
		}

		validateRuleOptions(ruleKey, canonicalID, ruleCfg, result)
	}
}

// validateRuleOptions checks rule-specific option values.
// Catching a bad style here fails fast instead of erroring on every file.
func validateRuleOptions(ruleKey, canonicalID string, ruleCfg config.RuleConfig, result *ValidationResult) {
	if canonicalID != rules.BulletStyleRuleID {
		return
	}

	raw, ok := ruleCfg.Options["style"]
	if !ok {
		return
	}

	style, ok := raw.(string)
	if !ok || !rules.IsValidStyle(style) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rules." + ruleKey + ".options.style",
			Value:   raw,
			Message: fmt.Sprintf("invalid style %v; must be one of: consistent, sublist, '-', '*', '+'", raw),
		})
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match errors only on malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes the file path in findings.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return knownSeverities[s]
}

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return knownFlavors[f]
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
