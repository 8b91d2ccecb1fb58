package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotconf/internal/cli"
	"github.com/thoreinstein/dotconf/internal/errors"
)

// runCLI executes the root command with args and returns captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	setValues = nil

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func testStore(t *testing.T) string {
	t.Helper()
	color.NoColor = true
	locator := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("DOTCONF_STORE", locator)
	return locator
}

func TestConfig_SetThenGet(t *testing.T) {
	testStore(t)

	_, err := runCLI(t, "config", "courses.datintro22.url", "--set", "https://x")
	require.NoError(t, err)

	out, err := runCLI(t, "config", "courses.datintro22.url")
	require.NoError(t, err)
	assert.Equal(t, "courses.datintro22.url = https://x\n", out)
}

func TestConfig_SetMultipleValues(t *testing.T) {
	testStore(t)

	_, err := runCLI(t, "config", "courses.prgx22.TAs",
		"-s", "Asse", "-s", "Assa", "-s", "Asselina")
	require.NoError(t, err)

	out, err := runCLI(t, "config", "courses.prgx22.TAs")
	require.NoError(t, err)
	assert.Equal(t, `courses.prgx22.TAs = ["Asse","Assa","Asselina"]`+"\n", out)
}

func TestConfig_ValuesPersistAcrossInvocations(t *testing.T) {
	locator := testStore(t)

	_, err := runCLI(t, "config", "a.b", "--set", "1")
	require.NoError(t, err)
	require.FileExists(t, locator)

	out, err := runCLI(t, "config", "a.b")
	require.NoError(t, err)
	assert.Equal(t, "a.b = 1\n", out)
}

func TestConfig_DeleteWithEmptyString(t *testing.T) {
	testStore(t)

	_, err := runCLI(t, "config", "a.b", "--set", "v")
	require.NoError(t, err)
	_, err = runCLI(t, "config", "a.b", "--set", "")
	require.NoError(t, err)

	_, err = runCLI(t, "config", "a.b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPathNotFound))
}

func TestConfig_UnknownPathExitsNonZero(t *testing.T) {
	testStore(t)

	_, err := runCLI(t, "config", "no.such.path")
	require.Error(t, err)
	assert.NotEqual(t, errors.ExitSuccess, cli.ExitCode(err))
}

func TestConfig_PrintWholeDocument(t *testing.T) {
	testStore(t)

	_, err := runCLI(t, "config", "a.x", "--set", "1")
	require.NoError(t, err)
	_, err = runCLI(t, "config", "a.y", "--set", "two")
	require.NoError(t, err)

	out, err := runCLI(t, "config")
	require.NoError(t, err)
	assert.Equal(t, "a.x = 1\na.y = two\n", out)
}

func TestCompletePath(t *testing.T) {
	testStore(t)

	_, err := runCLI(t, "config", "courses.datintro22.url", "--set", "https://x")
	require.NoError(t, err)

	got, directive := completePath(configCmd, nil, "courses.dat")
	assert.Contains(t, got, "courses.datintro22")
	assert.Contains(t, got, "courses.datintro22.url")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestSetupLogging_QuietAndVerboseConflict(t *testing.T) {
	quiet = true
	verbosity = 1
	t.Cleanup(func() { quiet = false; verbosity = 0 })

	err := setupLogging(rootCmd)
	require.Error(t, err)
}
