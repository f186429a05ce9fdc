package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okralabs/bulletlint/internal/cli"
)

// mixedMarkers has a dash first, so consistent mode flags the star and plus.
const mixedMarkers = "# List\n\n- alpha\n* beta\n+ gamma\n"

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// minimalConfig pins discovery to a known config so the host environment
// cannot leak into the test.
func minimalConfig(t *testing.T, dir string) string {
	t.Helper()
	return writeTestFile(t, dir, ".bulletlint.yml", "flavor: commonmark\n")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_LintMixedMarkers(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	output, err := runCommand(t,
		"lint", "--config", cfgFile, "--no-context", "--color", "never", mdFile)

	// Default severity is warning, so without --strict the command succeeds.
	require.NoError(t, err)

	assert.Contains(t, output, "bullet-style")
	assert.Contains(t, output, "Unordered list marker style should be '-'.")
	assert.Contains(t, output, "test.md:4:1")
	assert.Contains(t, output, "test.md:5:1")
	assert.Contains(t, output, "2 issues")
}

func TestIntegration_StrictExitCode(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	_, err := runCommand(t,
		"lint", "--config", cfgFile, "--strict", "--color", "never", mdFile)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitLintWarnings, exitErr.Code)
}

func TestIntegration_ErrorSeverityExitCode(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := writeTestFile(t, tmpDir, ".bulletlint.yml", `
rules:
  BL001:
    severity: error
`)

	_, err := runCommand(t,
		"lint", "--config", cfgFile, "--color", "never", mdFile)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitLintErrors, exitErr.Code)
}

func TestIntegration_StyleFlag(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", "- one\n- two\n")
	cfgFile := minimalConfig(t, tmpDir)

	output, err := runCommand(t,
		"lint", "--config", cfgFile, "--style", "*", "--no-context", "--color", "never", mdFile)

	require.NoError(t, err)
	assert.Contains(t, output, "Unordered list marker style should be '*'.")
	assert.Contains(t, output, "2 issues")
}

func TestIntegration_FixRewritesFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	_, err := runCommand(t,
		"lint", "--config", cfgFile, "--fix", "--no-backups", "--color", "never", mdFile)
	require.NoError(t, err)

	fixed, readErr := os.ReadFile(mdFile)
	require.NoError(t, readErr)
	assert.Equal(t, "# List\n\n- alpha\n- beta\n- gamma\n", string(fixed))

	_, statErr := os.Stat(mdFile + ".bulletlint.bak")
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no backup expected with --no-backups")
}

func TestIntegration_FixCreatesBackup(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	_, err := runCommand(t,
		"lint", "--config", cfgFile, "--fix", "--color", "never", mdFile)
	require.NoError(t, err)

	backup, readErr := os.ReadFile(mdFile + ".bulletlint.bak")
	require.NoError(t, readErr)
	assert.Equal(t, mixedMarkers, string(backup), "backup should hold the original content")
}

func TestIntegration_DryRunLeavesFileAlone(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	output, err := runCommand(t,
		"lint", "--config", cfgFile, "--fix", "--dry-run", "--format", "diff",
		"--color", "never", mdFile)
	require.NoError(t, err)

	content, readErr := os.ReadFile(mdFile)
	require.NoError(t, readErr)
	assert.Equal(t, mixedMarkers, string(content))

	assert.Contains(t, output, "-* beta")
	assert.Contains(t, output, "+- beta")
}

func TestIntegration_JSONOutput(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	output, err := runCommand(t,
		"lint", "--config", cfgFile, "--format", "json", "--color", "never", mdFile)
	require.NoError(t, err)

	assert.Contains(t, output, `"ruleId"`)
	assert.Contains(t, output, `"BL001"`)
	assert.Contains(t, output, `"ruleName"`)
	assert.Contains(t, output, `"bullet-style"`)
}

func TestIntegration_DisabledRuleByAlias(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := writeTestFile(t, tmpDir, ".bulletlint.yml", `
rules:
  ul-style:
    enabled: false
`)

	output, err := runCommand(t,
		"lint", "--config", cfgFile, "--color", "never", mdFile)
	require.NoError(t, err)

	assert.NotContains(t, output, "bullet-style")
	assert.NotContains(t, output, "BL001")
}

func TestIntegration_DisableFlag(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	output, err := runCommand(t,
		"lint", "--config", cfgFile, "--disable", "BL001", "--color", "never", mdFile)
	require.NoError(t, err)

	assert.NotContains(t, output, "bullet-style")
}

func TestIntegration_InvalidStyleFlag(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mdFile := writeTestFile(t, tmpDir, "test.md", mixedMarkers)
	cfgFile := minimalConfig(t, tmpDir)

	_, err := runCommand(t,
		"lint", "--config", cfgFile, "--style", "dots", "--color", "never", mdFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "style")
}

func TestIntegration_RulesCommandJSON(t *testing.T) {
	t.Parallel()

	output, err := runCommand(t, "rules", "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, output, `"id": "BL001"`)
	assert.Contains(t, output, `"name": "bullet-style"`)
	assert.Contains(t, output, `"fixable": true`)
}

func TestIntegration_InitCommand(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, ".bulletlint.yml")

	_, err := runCommand(t, "init", "--output", outPath)
	require.NoError(t, err)

	content, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "BL001")
	assert.Contains(t, string(content), "style: consistent")

	// A second run without --force must refuse to overwrite.
	_, err = runCommand(t, "init", "--output", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCommand(t, "init", "--output", outPath, "--force")
	require.NoError(t, err)
}
