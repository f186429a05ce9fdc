package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okralabs/bulletlint/pkg/config"
	"github.com/okralabs/bulletlint/pkg/lint"
)

// stubRule is a minimal rule for registry and resolve tests.
type stubRule struct {
	lint.BaseRule
}

func newStubRule(id, name string) *stubRule {
	return &stubRule{
		BaseRule: lint.NewBaseRule(lint.RuleInfo{
			ID:          id,
			Name:        name,
			Description: "stub rule",
			Tags:        []string{"test"},
			Fixable:     true,
		}),
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rule := newStubRule("BL001", "bullet-style")
	registry.Register(rule)

	byID, ok := registry.Get("BL001")
	require.True(t, ok)
	assert.Equal(t, "bullet-style", byID.Name())

	byName, ok := registry.Get("bullet-style")
	require.True(t, ok)
	assert.Equal(t, "BL001", byName.ID())

	_, ok = registry.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_ResolveAlias(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("BL001", "bullet-style"))
	registry.RegisterAlias("ul-style", "BL001")

	id, rule, ok := registry.Resolve("ul-style")
	require.True(t, ok)
	assert.Equal(t, "BL001", id)
	assert.Equal(t, "bullet-style", rule.Name())

	_, _, ok = registry.Resolve("missing")
	assert.False(t, ok)
}

func TestRegistry_RulesSorted(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("BL002", "b"))
	registry.Register(newStubRule("BL001", "a"))

	rules := registry.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "BL001", rules[0].ID())
	assert.Equal(t, "BL002", rules[1].ID())
	assert.Equal(t, []string{"BL001", "BL002"}, registry.IDs())
}

func TestResolveRules(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("BL001", "bullet-style"))

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		resolved := lint.ResolveRules(registry, config.NewConfig())
		require.Len(t, resolved, 1)
		assert.True(t, resolved[0].Enabled)
		assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
		// Auto-fix requires --fix.
		assert.False(t, resolved[0].AutoFix)
	})

	t.Run("fix mode enables auto-fix", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Fix = true
		resolved := lint.ResolveRules(registry, cfg)
		require.Len(t, resolved, 1)
		assert.True(t, resolved[0].AutoFix)
	})

	t.Run("disabled by rule config", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		enabled := false
		cfg.Rules["BL001"] = config.RuleConfig{Enabled: &enabled}
		assert.Empty(t, lint.ResolveRules(registry, cfg))
	})

	t.Run("disabled by CLI", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.DisableRules = []string{"BL001"}
		assert.Empty(t, lint.ResolveRules(registry, cfg))
	})

	t.Run("severity override", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		severity := "error"
		cfg.Rules["BL001"] = config.RuleConfig{Severity: &severity}
		resolved := lint.ResolveRules(registry, cfg)
		require.Len(t, resolved, 1)
		assert.Equal(t, config.SeverityError, resolved[0].Severity)
	})
}
