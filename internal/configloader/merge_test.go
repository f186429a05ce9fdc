package configloader

import (
	"testing"

	"github.com/okralabs/bulletlint/pkg/config"
)

func boolPtr(b bool) *bool { return &b }

func TestMerge_Scalars(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{
		Flavor:          config.FlavorGFM,
		SeverityDefault: "error",
		Format:          config.FormatJSON,
		Jobs:            4,
	}

	result := merge(base, override)

	if result.Flavor != config.FlavorGFM {
		t.Errorf("flavor = %q", result.Flavor)
	}
	if result.SeverityDefault != "error" {
		t.Errorf("severity_default = %q", result.SeverityDefault)
	}
	if result.Format != config.FormatJSON {
		t.Errorf("format = %q", result.Format)
	}
	if result.Jobs != 4 {
		t.Errorf("jobs = %d", result.Jobs)
	}
}

func TestMerge_ZeroValuesDoNotOverride(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Flavor = config.FlavorGFM
	base.Jobs = 4

	result := merge(base, &config.Config{})

	if result.Flavor != config.FlavorGFM {
		t.Errorf("empty override clobbered flavor: %q", result.Flavor)
	}
	if result.Jobs != 4 {
		t.Errorf("empty override clobbered jobs: %d", result.Jobs)
	}
}

func TestMerge_BoolsOnlyTurnOn(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Fix = true

	result := merge(base, &config.Config{DryRun: true})

	if !result.Fix {
		t.Error("false override should not clear fix")
	}
	if !result.DryRun {
		t.Error("dry_run should be set")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	if merge(base, nil) != base {
		t.Error("merge(base, nil) should return base")
	}
	if merge(nil, base) != base {
		t.Error("merge(nil, override) should return override")
	}
}

func TestMerge_RulesDeepMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Rules["BL001"] = config.RuleConfig{
		Enabled:  boolPtr(true),
		Severity: strPtr("warning"),
		Options:  map[string]any{"style": "consistent"},
	}

	override := &config.Config{
		Rules: map[string]config.RuleConfig{
			"BL001": {
				Severity: strPtr("error"),
				Options:  map[string]any{"style": "-"},
			},
		},
	}

	result := merge(base, override)

	merged := result.Rules["BL001"]
	if merged.Enabled == nil || !*merged.Enabled {
		t.Error("enabled should survive from base")
	}
	if merged.Severity == nil || *merged.Severity != "error" {
		t.Error("severity should come from override")
	}
	if merged.Options["style"] != "-" {
		t.Errorf("style = %v", merged.Options["style"])
	}

	// The base rule's options map must not be mutated by the merge.
	if base.Rules["BL001"].Options["style"] != "consistent" {
		t.Error("merge mutated base options map")
	}
}

func TestMerge_SlicesReplace(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"vendor/**"}

	result := merge(base, &config.Config{Ignore: []string{"docs/**"}})
	if len(result.Ignore) != 1 || result.Ignore[0] != "docs/**" {
		t.Errorf("ignore = %v", result.Ignore)
	}

	// A nil slice leaves the base slice alone.
	result = merge(base, &config.Config{})
	if len(result.Ignore) != 1 || result.Ignore[0] != "vendor/**" {
		t.Errorf("nil override slice clobbered base: %v", result.Ignore)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	first := config.NewConfig()
	second := &config.Config{Flavor: config.FlavorGFM}
	third := &config.Config{Jobs: 2}

	result := MergeAll(first, second, third)
	if result.Flavor != config.FlavorGFM {
		t.Errorf("flavor = %q", result.Flavor)
	}
	if result.Jobs != 2 {
		t.Errorf("jobs = %d", result.Jobs)
	}

	if MergeAll() != nil {
		t.Error("MergeAll() with no configs should be nil")
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("BULLETLINT_JOBS", "many")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err == nil {
		t.Fatal("expected error for non-integer BULLETLINT_JOBS")
	}
}
