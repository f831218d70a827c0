// Package svn provides a wrapper around the svn command line client for
// working copy operations.
package svn

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	svnpickerrors "svnpick.dev/svnpick/internal/errors"
)

// CommandRunner handles execution of svn commands in a working directory.
// Commands block until the external process exits; the runner imposes no
// timeout of its own. Callers that need one can pass a context with a
// deadline.
type CommandRunner struct {
	executable string
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{executable: "svn", workingDir: workingDir}
}

// NewCommandRunnerWithExecutable creates a CommandRunner that invokes a
// specific executable instead of "svn". Used by tests.
func NewCommandRunnerWithExecutable(executable, workingDir string) *CommandRunner {
	return &CommandRunner{executable: executable, workingDir: workingDir}
}

// WorkingDir returns the directory commands run in.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes an svn command and returns its trimmed stdout. A non-zero
// exit is wrapped in an SVNCommandError carrying the command, exit code
// and both output streams.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.executable, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", svnpickerrors.NewSVNCommandError(
			r.executable, args, exitCode,
			strings.TrimSpace(stdout.String()),
			strings.TrimSpace(stderr.String()),
			err,
		)
	}
	return strings.TrimSpace(stdout.String()), nil
}
