package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okralabs/bulletlint/pkg/config"
	"github.com/okralabs/bulletlint/pkg/fix"
	"github.com/okralabs/bulletlint/pkg/lint"
	"github.com/okralabs/bulletlint/pkg/parser/goldmark"
)

func TestBulletStyleRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
		config    map[string]any
	}{
		{
			name:      "consistent all dash",
			input:     "- Item 1\n- Item 2\n- Item 3\n",
			wantDiags: 0,
		},
		{
			name:      "consistent locks first marker",
			input:     "- a\n* b\n+ c\n",
			wantDiags: 2,
			wantFix:   "- a\n- b\n- c\n",
		},
		{
			name:      "consistent locks asterisk when first",
			input:     "* a\n- b\n",
			wantDiags: 1,
			wantFix:   "* a\n* b\n",
		},
		{
			name:      "consistent first item never flagged",
			input:     "* a\n- b\n- c\n",
			wantDiags: 2,
			wantFix:   "* a\n* b\n* c\n",
		},
		{
			name:      "fixed dash style",
			input:     "* a\n+ b\n",
			wantDiags: 2,
			wantFix:   "- a\n- b\n",
			config:    map[string]any{"style": "-"},
		},
		{
			name:      "fixed asterisk style",
			input:     "- a\n",
			wantDiags: 1,
			wantFix:   "* a\n",
			config:    map[string]any{"style": "*"},
		},
		{
			name:      "fixed plus style matching",
			input:     "+ a\n+ b\n",
			wantDiags: 0,
			config:    map[string]any{"style": "+"},
		},
		{
			name:      "sublist nested markers rotate",
			input:     "* a\n  * b\n    * c\n",
			wantDiags: 2,
			wantFix:   "* a\n  + b\n    - c\n",
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "sublist siblings share depth",
			input:     "* a\n* b\n",
			wantDiags: 0,
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "sublist already rotated",
			input:     "* a\n  + b\n    - c\n",
			wantDiags: 0,
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "sublist cycle wraps at depth three",
			input:     "* a\n  + b\n    - c\n      * d\n",
			wantDiags: 0,
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "sublist top level expects asterisk",
			input:     "- a\n",
			wantDiags: 1,
			wantFix:   "* a\n",
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "sublist skips ordered ancestors",
			input:     "- a\n  1. b\n     * c\n",
			wantDiags: 2,
			wantFix:   "* a\n  1. b\n     + c\n",
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "ordered list ignored",
			input:     "1. a\n2. b\n",
			wantDiags: 0,
		},
		{
			name:      "ordered list ignored in sublist mode",
			input:     "1. a\n2. b\n",
			wantDiags: 0,
			config:    map[string]any{"style": "sublist"},
		},
		{
			name:      "list in blockquote",
			input:     "> - a\n> * b\n",
			wantDiags: 1,
			wantFix:   "> - a\n> - b\n",
		},
		{
			name:      "empty item between siblings",
			input:     "- a\n-\n- b\n",
			wantDiags: 3,
			wantFix:   "* a\n*\n* b\n",
			config:    map[string]any{"style": "*"},
		},
		{
			name:      "content on line after marker",
			input:     "-\n  deferred\n",
			wantDiags: 1,
			wantFix:   "*\n  deferred\n",
			config:    map[string]any{"style": "*"},
		},
		{
			name:      "deferred content item checked in consistent mode",
			input:     "* a\n\n-\n  deferred\n",
			wantDiags: 1,
			wantFix:   "* a\n\n*\n  deferred\n",
		},
		{
			name:      "markers in code block ignored",
			input:     "- a\n\n```\n* not a list\n```\n",
			wantDiags: 0,
		},
		{
			name:      "no lists",
			input:     "Just text\n",
			wantDiags: 0,
		},
		{
			name:      "empty file",
			input:     "",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := goldmark.New(string(config.FlavorCommonMark))
			snapshot, err := parser.Parse(context.Background(), "test.md", []byte(tt.input))
			require.NoError(t, err)

			rule := NewBulletStyleRule()
			cfg := config.NewConfig()
			var ruleCfg *config.RuleConfig
			if tt.config != nil {
				ruleCfg = &config.RuleConfig{Options: tt.config}
			}
			ruleCtx := lint.NewRuleContext(context.Background(), snapshot, cfg, ruleCfg)

			diags, err := rule.Apply(ruleCtx)
			require.NoError(t, err)
			assert.Len(t, diags, tt.wantDiags)

			// Every diagnostic carries exactly one single-byte replacement.
			for _, d := range diags {
				require.Len(t, d.FixEdits, 1)
				edit := d.FixEdits[0]
				assert.Equal(t, edit.StartOffset+1, edit.EndOffset)
				assert.Len(t, edit.NewText, 1)
			}

			// Verify fix application.
			if tt.wantFix != "" && tt.wantDiags > 0 {
				var allEdits []fix.TextEdit
				for _, d := range diags {
					allEdits = append(allEdits, d.FixEdits...)
				}
				prepared, err := fix.PrepareEdits(allEdits, len(tt.input))
				require.NoError(t, err)
				fixed := fix.ApplyEdits([]byte(tt.input), prepared)
				assert.Equal(t, tt.wantFix, string(fixed))

				// Verify idempotency.
				snapshot2, err := parser.Parse(context.Background(), "test.md", fixed)
				require.NoError(t, err)
				ruleCtx2 := lint.NewRuleContext(context.Background(), snapshot2, cfg, ruleCfg)
				diags2, err := rule.Apply(ruleCtx2)
				require.NoError(t, err)
				assert.Empty(t, diags2, "fix should be idempotent")
			}
		})
	}
}

func TestBulletStyleRule_InvalidStyle(t *testing.T) {
	parser := goldmark.New(string(config.FlavorCommonMark))
	snapshot, err := parser.Parse(context.Background(), "test.md", []byte("- a\n"))
	require.NoError(t, err)

	rule := NewBulletStyleRule()
	ruleCfg := &config.RuleConfig{Options: map[string]any{"style": "dashes"}}
	ruleCtx := lint.NewRuleContext(context.Background(), snapshot, config.NewConfig(), ruleCfg)

	_, err = rule.Apply(ruleCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid style")
}

func TestBulletStyleRule_DiagnosticShape(t *testing.T) {
	parser := goldmark.New(string(config.FlavorCommonMark))
	snapshot, err := parser.Parse(context.Background(), "test.md", []byte("- a\n* b\n"))
	require.NoError(t, err)

	rule := NewBulletStyleRule()
	ruleCtx := lint.NewRuleContext(context.Background(), snapshot, config.NewConfig(), nil)

	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	require.Len(t, diags, 1)

	diag := diags[0]
	assert.Equal(t, "BL001", diag.RuleID)
	assert.Equal(t, "bullet-style", diag.RuleName)
	assert.Equal(t, "Unordered list marker style should be '-'.", diag.Message)
	assert.Equal(t, "test.md", diag.FilePath)

	// The range covers exactly the marker character on line 2.
	assert.Equal(t, 2, diag.StartLine)
	assert.Equal(t, 1, diag.StartColumn)
	assert.Equal(t, 2, diag.EndLine)
	assert.Equal(t, 2, diag.EndColumn)

	require.Len(t, diag.FixEdits, 1)
	assert.Equal(t, fix.TextEdit{StartOffset: 4, EndOffset: 5, NewText: "-"}, diag.FixEdits[0])
}

func TestBulletStyleRule_IsValidStyle(t *testing.T) {
	for _, valid := range []string{"consistent", "sublist", "-", "*", "+"} {
		assert.True(t, IsValidStyle(valid), valid)
	}
	for _, invalid := range []string{"", "dash", "consistent ", "--", "x"} {
		assert.False(t, IsValidStyle(invalid), invalid)
	}
}

func TestBulletStyleRule_Metadata(t *testing.T) {
	rule := NewBulletStyleRule()

	assert.Equal(t, "BL001", rule.ID())
	assert.Equal(t, "bullet-style", rule.Name())
	assert.True(t, rule.CanFix())
	assert.True(t, rule.DefaultEnabled())
	assert.Equal(t, []string{"lists", "style"}, rule.Tags())
}

func TestRegisterAliases(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	RegisterAliases(registry)

	for _, key := range []string{"BL001", "bullet-style", "MD004", "ul-style"} {
		id, rule, ok := registry.Resolve(key)
		require.True(t, ok, key)
		assert.Equal(t, "BL001", id)
		assert.Equal(t, "bullet-style", rule.Name())
	}
}
