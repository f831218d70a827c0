package testhelpers

import (
	"io"

	"svnpick.dev/svnpick/internal/output"
	"svnpick.dev/svnpick/internal/resolve"
	"svnpick.dev/svnpick/internal/runtime"
	"svnpick.dev/svnpick/internal/svn"
)

// NewTestContext builds a runtime context whose console output is
// discarded. resolver may be nil.
func NewTestContext(client svn.Client, resolver resolve.Resolver) *runtime.Context {
	splog, _ := output.NewSplogWithConfig(io.Discard, "")
	return &runtime.Context{
		Client:   client,
		Resolver: resolver,
		Splog:    splog,
	}
}
