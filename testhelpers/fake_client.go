// Package testhelpers provides recording fakes for the svn client and
// the interactive resolver, used by tests across packages.
package testhelpers

import (
	"context"
	"fmt"

	"svnpick.dev/svnpick/internal/svn"
)

// FakeClient is a recording implementation of svn.Client. Every call is
// appended to Calls; failures are scripted per operation. Dirty tracks
// whether the fake working copy has uncommitted modifications.
type FakeClient struct {
	Dir   string
	Calls []string

	SwitchErr error
	UpdateErr error
	// MergeErrs maps a revision token to the error its merge returns.
	MergeErrs map[string]error
	RevertErr error

	StatusOut string
	InfoOut   string
	InfoErr   error

	// Dirty is set by a merge attempt and cleared by Revert.
	Dirty bool
}

var _ svn.Client = (*FakeClient)(nil)

// NewFakeClient creates a FakeClient for the given working copy path.
func NewFakeClient(dir string) *FakeClient {
	return &FakeClient{Dir: dir, MergeErrs: map[string]error{}}
}

func (f *FakeClient) Switch(_ context.Context, branch string) error {
	f.Calls = append(f.Calls, "switch "+branch)
	return f.SwitchErr
}

func (f *FakeClient) Update(_ context.Context) error {
	f.Calls = append(f.Calls, "update")
	return f.UpdateErr
}

func (f *FakeClient) Merge(_ context.Context, revision, sourceBranch string) error {
	f.Calls = append(f.Calls, fmt.Sprintf("merge %s %s", revision, sourceBranch))
	f.Dirty = true
	return f.MergeErrs[revision]
}

func (f *FakeClient) Revert(_ context.Context) error {
	f.Calls = append(f.Calls, "revert")
	if f.RevertErr != nil {
		return f.RevertErr
	}
	f.Dirty = false
	return nil
}

func (f *FakeClient) Status(_ context.Context) (string, error) {
	f.Calls = append(f.Calls, "status")
	return f.StatusOut, nil
}

func (f *FakeClient) Info(_ context.Context) (string, error) {
	f.Calls = append(f.Calls, "info")
	return f.InfoOut, f.InfoErr
}

func (f *FakeClient) WorkingDir() string {
	return f.Dir
}

// RevertCount returns how many times Revert was invoked.
func (f *FakeClient) RevertCount() int {
	count := 0
	for _, call := range f.Calls {
		if call == "revert" {
			count++
		}
	}
	return count
}

// MergedRevisions returns the revision tokens passed to Merge, in call
// order.
func (f *FakeClient) MergedRevisions() []string {
	var revs []string
	for _, call := range f.Calls {
		var rev, src string
		if n, err := fmt.Sscanf(call, "merge %s %s", &rev, &src); err == nil && n == 2 {
			revs = append(revs, rev)
		}
	}
	return revs
}
