package configloader

import "github.com/okralabs/bulletlint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.SeverityDefault != "" {
		result.SeverityDefault = override.SeverityDefault
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans can only be turned on by an override; false is the zero
	// value and indistinguishable from unset.
	if override.Fix {
		result.Fix = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.EnableRules != nil {
		result.EnableRules = override.EnableRules
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

// mergeRules performs a deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}
	if override.AutoFix != nil {
		result.AutoFix = override.AutoFix
	}

	if override.Options != nil {
		merged := make(map[string]any, len(base.Options)+len(override.Options))
		for key, val := range base.Options {
			merged[key] = val
		}
		for key, val := range override.Options {
			merged[key] = val
		}
		result.Options = merged
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs
// taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
