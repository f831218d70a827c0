package resolve_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	svnpickerrors "svnpick.dev/svnpick/internal/errors"
	"svnpick.dev/svnpick/internal/resolve"
)

func writeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tortoise-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestTortoiseResolver(t *testing.T) {
	t.Run("defaults the executable", func(t *testing.T) {
		r := resolve.NewTortoiseResolver("")
		require.Equal(t, resolve.DefaultTortoiseExecutable, r.Executable)
	})

	t.Run("reports an unavailable tool", func(t *testing.T) {
		r := resolve.NewTortoiseResolver("definitely-not-tortoise")

		err := r.Resolve(context.Background(), "/wc")
		require.ErrorIs(t, err, svnpickerrors.ErrToolUnavailable)
	})

	t.Run("passes the resolve command and working copy path", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "args.log")
		tool := writeTool(t, "echo \"$@\" > \""+logFile+"\"\n")
		r := resolve.NewTortoiseResolver(tool)

		require.NoError(t, r.Resolve(context.Background(), "/wc"))

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Equal(t, "/command:resolve /path:/wc\n", string(data))
	})

	t.Run("wraps a non-zero tool exit", func(t *testing.T) {
		tool := writeTool(t, "exit 1\n")
		r := resolve.NewTortoiseResolver(tool)

		err := r.Resolve(context.Background(), "/wc")
		require.Error(t, err)

		var toolErr *svnpickerrors.ToolFailedError
		require.ErrorAs(t, err, &toolErr)
	})
}
