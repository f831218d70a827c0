package svn

import "context"

// Client defines the working copy operations the merge executor needs.
// This allows the executor to be used with both the real svn client and
// mock implementations.
type Client interface {
	// Switch switches the working copy to the given branch.
	Switch(ctx context.Context, branch string) error

	// Update brings the working copy to the latest revision with full
	// recursive depth.
	Update(ctx context.Context) error

	// Merge cherry-picks a single revision from sourceBranch into the
	// working copy, preferring incoming changes on textual conflicts.
	Merge(ctx context.Context, revision, sourceBranch string) error

	// Revert recursively discards all uncommitted local modifications.
	// Safe to call on an already-clean working copy.
	Revert(ctx context.Context) error

	// Status returns the working copy status output.
	Status(ctx context.Context) (string, error)

	// Info returns the working copy info output.
	Info(ctx context.Context) (string, error)

	// WorkingDir returns the working copy path this client operates on.
	WorkingDir() string
}

// client is the real implementation of Client backed by a CommandRunner.
type client struct {
	runner *CommandRunner
}

// NewClient creates a Client that shells out to the svn binary in the
// given working directory.
func NewClient(workingDir string) Client {
	return &client{runner: NewCommandRunner(workingDir)}
}

// NewClientWithRunner creates a Client on top of an existing runner.
func NewClientWithRunner(runner *CommandRunner) Client {
	return &client{runner: runner}
}

func (c *client) Switch(ctx context.Context, branch string) error {
	_, err := c.runner.Run(ctx, "switch", branch)
	return err
}

func (c *client) Update(ctx context.Context) error {
	_, err := c.runner.Run(ctx, "update", "--set-depth", "infinity")
	return err
}

func (c *client) Merge(ctx context.Context, revision, sourceBranch string) error {
	_, err := c.runner.Run(ctx, "merge", "-c", revision, sourceBranch, "--accept", "theirs-full")
	return err
}

func (c *client) Revert(ctx context.Context) error {
	_, err := c.runner.Run(ctx, "revert", "-R", ".")
	return err
}

func (c *client) Status(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "status")
}

func (c *client) Info(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, "info")
}

func (c *client) WorkingDir() string {
	return c.runner.WorkingDir()
}
