package testhelpers

import (
	"context"

	"svnpick.dev/svnpick/internal/resolve"
)

// FakeResolver is a recording implementation of resolve.Resolver.
type FakeResolver struct {
	Err   error
	Calls []string
}

var _ resolve.Resolver = (*FakeResolver)(nil)

func (f *FakeResolver) Resolve(_ context.Context, workingDir string) error {
	f.Calls = append(f.Calls, workingDir)
	return f.Err
}
