package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/hueblocks/pkg/errors"
)

// isolateConfig points the default config lookup at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerateDefaults(t *testing.T) {
	isolateConfig(t)

	out, _, err := runCLI(t, "generate", "--seed", "42")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Regexp(t, `^#[0-9A-F]{6}$`, line)
	}
}

func TestGenerateIsRepeatableWithSeed(t *testing.T) {
	isolateConfig(t)

	first, _, err := runCLI(t, "generate", "--seed", "7", "--theory", "complementary")
	require.NoError(t, err)
	second, _, err := runCLI(t, "generate", "--seed", "7", "--theory", "complementary")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateBlocksFlag(t *testing.T) {
	isolateConfig(t)

	out, _, err := runCLI(t, "generate", "--seed", "3", "--blocks", "9", "--theory", "random")
	require.NoError(t, err)
	assert.Len(t, outputLines(out), 9)
}

func TestGenerateKeepsLockedBlocks(t *testing.T) {
	isolateConfig(t)

	out, _, err := runCLI(t, "generate", "--seed", "11", "--lock", "2=ff8800", "--lock", "4=#003366")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 5)
	assert.Equal(t, "#FF8800", lines[1])
	assert.Equal(t, "#003366", lines[3])
}

func TestGenerateRejectsBadLocks(t *testing.T) {
	isolateConfig(t)

	cases := []struct {
		name string
		lock string
	}{
		{name: "missing separator", lock: "2"},
		{name: "index out of range", lock: "12=ffffff"},
		{name: "index not a number", lock: "two=ffffff"},
		{name: "bad hex", lock: "1=zz0000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, "generate", "--lock", tc.lock)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "lock", validationErr.Field)
		})
	}
}

func TestGenerateBadHexMatchesSentinel(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCLI(t, "generate", "--lock", "1=12g456")
	require.ErrorIs(t, err, apperrors.ErrInvalidDigit)
}

func TestGenerateLockBeyondBlockCount(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCLI(t, "generate", "--blocks", "3", "--lock", "5=ffffff")
	require.ErrorIs(t, err, apperrors.ErrSelectionEmpty)
}

func TestGenerateReadsConfigFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "palette.toml")
	require.NoError(t, os.WriteFile(path, []byte("blocks = 3\nseed = 5\ntheory = \"random\"\n"), 0o644))

	out, _, err := runCLI(t, "generate", "--config", path)
	require.NoError(t, err)
	assert.Len(t, outputLines(out), 3)

	again, _, err := runCLI(t, "generate", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateFlagsOverrideConfig(t *testing.T) {
	dir := isolateConfig(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hueblocks"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hueblocks", "config.yaml"), []byte("blocks: 3\n"), 0o644))

	out, _, err := runCLI(t, "generate", "--seed", "1")
	require.NoError(t, err)
	assert.Len(t, outputLines(out), 3)

	out, _, err = runCLI(t, "generate", "--seed", "1", "--blocks", "6")
	require.NoError(t, err)
	assert.Len(t, outputLines(out), 6)
}

func TestGenerateRejectsInvalidFlags(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCLI(t, "generate", "--blocks", "2")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "blocks", validationErr.Field)

	_, _, err = runCLI(t, "generate", "--theory", "triadic")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theory", validationErr.Field)
}

func TestGenerateWritesLogFile(t *testing.T) {
	isolateConfig(t)

	logPath := filepath.Join(t.TempDir(), "hueblocks.log")
	_, stderr, err := runCLI(t, "generate", "--seed", "9", "--log-level", "debug", "--log-file", logPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "palette generated")
	assert.Contains(t, string(data), `"component":"generate"`)
}

func TestGenerateLogsToStderrByDefault(t *testing.T) {
	isolateConfig(t)

	_, stderr, err := runCLI(t, "generate", "--seed", "9", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "palette generated")
}

func TestGenerateFlagsRepairInvalidConfigValue(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks: 2\n"), 0o644))

	out, _, err := runCLI(t, "generate", "--config", path, "--seed", "4", "--blocks", "5")
	require.NoError(t, err)
	assert.Len(t, outputLines(out), 5)

	_, _, err = runCLI(t, "generate", "--config", path, "--seed", "4")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "blocks", validationErr.Field)
}
