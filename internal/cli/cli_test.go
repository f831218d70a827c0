package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"svnpick.dev/svnpick/internal/cli"
	svnpickerrors "svnpick.dev/svnpick/internal/errors"
)

func init() {
	os.Setenv("SVNPICK_TEST_NO_INTERACTIVE", "1")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := cli.NewRootCmd("test", "none", "unknown")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const completePlan = `{
	"source_branch": "/branches/feature",
	"target_branch": "/trunk",
	"working_dir": "/wc",
	"revisions": [42, 43]
}`

func TestValidateCmd(t *testing.T) {
	t.Run("accepts a complete plan", func(t *testing.T) {
		out, err := execute(t, "validate", "--plan", writePlan(t, completePlan))
		require.NoError(t, err)
		require.Contains(t, out, "Plan is valid: 2 revision(s)")
	})

	t.Run("rejects a missing plan file", func(t *testing.T) {
		_, err := execute(t, "validate", "--plan", filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, svnpickerrors.ErrConfigNotFound)
	})

	t.Run("rejects an incomplete plan", func(t *testing.T) {
		path := writePlan(t, `{"source_branch": "/branches/feature"}`)
		_, err := execute(t, "validate", "--plan", path)
		require.ErrorIs(t, err, svnpickerrors.ErrConfigInvalid)
	})
}

func TestPlanCmd(t *testing.T) {
	out, err := execute(t, "plan", "--plan", writePlan(t, completePlan))
	require.NoError(t, err)
	require.Contains(t, out, "/branches/feature")
	require.Contains(t, out, "r42")
	require.Contains(t, out, "r43")
}

func TestRunCmd(t *testing.T) {
	t.Run("fails before any svn invocation when the plan file is absent", func(t *testing.T) {
		_, err := execute(t, "run", "--plan", filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, svnpickerrors.ErrConfigNotFound)
	})

	t.Run("fails on an invalid plan", func(t *testing.T) {
		path := writePlan(t, `{"source_branch": "/branches/feature", "revisions": []}`)
		_, err := execute(t, "run", "--plan", path)
		require.ErrorIs(t, err, svnpickerrors.ErrConfigInvalid)
	})

	t.Run("dry run does not require svn", func(t *testing.T) {
		_, err := execute(t, "run", "--dry-run", "--plan", writePlan(t, completePlan))
		require.NoError(t, err)
	})
}

func TestRevertCmdRequiresWorkingDir(t *testing.T) {
	_, err := execute(t, "revert")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--working-dir")
}
