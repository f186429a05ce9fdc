package config

// StarterTemplate returns a commented starter configuration file.
func StarterTemplate() []byte {
	return []byte(`# bulletlint configuration
# See: https://github.com/okralabs/bulletlint

# Markdown flavor: commonmark or gfm
flavor: commonmark

# Default severity for all rules: error, warning, or info
# severity_default: warning

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Keep sidecar backups when fixing files
backups:
  enabled: true

# Rule-specific configuration
rules:
  BL001:
    enabled: true
    # style: consistent, sublist, or a literal marker ("-", "*", "+")
    options:
      style: consistent
`)
}
