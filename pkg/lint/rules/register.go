package rules

import "github.com/okralabs/bulletlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewBulletStyleRule()) // BL001
}

// RegisterAliases registers markdownlint-compatible alias names so existing
// configuration files keep working (markdownlint calls this check MD004 /
// ul-style).
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("MD004", "BL001")
	registry.RegisterAlias("ul-style", "BL001")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
}
