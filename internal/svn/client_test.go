package svn_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svnpick.dev/svnpick/internal/svn"
)

// newStubClient returns a Client whose svn binary is replaced by a shell
// script that records its arguments, plus a function reading the
// recorded invocations.
func newStubClient(t *testing.T) (svn.Client, func() []string) {
	t.Helper()
	dir := t.TempDir()
	logFile := filepath.Join(dir, "invocations.log")
	stub := filepath.Join(dir, "svn-stub")

	script := "#!/bin/sh\necho \"$@\" >> \"" + logFile + "\"\n"
	require.NoError(t, os.WriteFile(stub, []byte(script), 0755))

	runner := svn.NewCommandRunnerWithExecutable(stub, dir)
	client := svn.NewClientWithRunner(runner)

	return client, func() []string {
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		return strings.Split(strings.TrimSpace(string(data)), "\n")
	}
}

func TestClientCommandLines(t *testing.T) {
	client, invocations := newStubClient(t)
	ctx := context.Background()

	require.NoError(t, client.Switch(ctx, "/trunk"))
	require.NoError(t, client.Update(ctx))
	require.NoError(t, client.Merge(ctx, "42", "/branches/feature"))
	require.NoError(t, client.Revert(ctx))

	require.Equal(t, []string{
		"switch /trunk",
		"update --set-depth infinity",
		"merge -c 42 /branches/feature --accept theirs-full",
		"revert -R .",
	}, invocations())
}
