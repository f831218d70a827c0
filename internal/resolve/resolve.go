// Package resolve provides the hand-off to an external interactive
// conflict resolution tool. The executor only depends on the Resolver
// interface; it never assumes a particular tool is installed.
package resolve

import (
	"context"
	"os/exec"

	svnpickerrors "svnpick.dev/svnpick/internal/errors"
)

// DefaultTortoiseExecutable is the TortoiseSVN process launcher. It must
// be on PATH unless an explicit path is configured.
const DefaultTortoiseExecutable = "TortoiseProc.exe"

// Resolver launches an external tool for manual conflict resolution and
// blocks until the operator closes it. A nil error means the operator is
// presumed to have resolved and marked the conflicts; the result is not
// verified.
type Resolver interface {
	Resolve(ctx context.Context, workingDir string) error
}

// TortoiseResolver resolves conflicts by launching TortoiseSVN's resolve
// dialog on the working copy.
type TortoiseResolver struct {
	Executable string
}

// NewTortoiseResolver creates a TortoiseResolver. An empty executable
// falls back to DefaultTortoiseExecutable.
func NewTortoiseResolver(executable string) *TortoiseResolver {
	if executable == "" {
		executable = DefaultTortoiseExecutable
	}
	return &TortoiseResolver{Executable: executable}
}

// Resolve launches the resolve dialog and waits for the operator to
// close it. Returns ErrToolUnavailable when the executable cannot be
// located, or a ToolFailedError when the tool exits non-zero.
func (r *TortoiseResolver) Resolve(ctx context.Context, workingDir string) error {
	path, err := exec.LookPath(r.Executable)
	if err != nil {
		return svnpickerrors.ErrToolUnavailable
	}

	cmd := exec.CommandContext(ctx, path, "/command:resolve", "/path:"+workingDir)
	if err := cmd.Run(); err != nil {
		return svnpickerrors.NewToolFailedError(r.Executable, err)
	}
	return nil
}
