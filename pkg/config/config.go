// Package config defines core configuration types for bulletlint.
// These types are pure data structures with no dependency on config loaders.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure for bulletlint.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:          FlavorCommonMark,
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Backups: BackupsConfig{
			Enabled: true,
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}
