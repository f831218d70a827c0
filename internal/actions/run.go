// Package actions implements the commands exposed by the svnpick CLI.
// The run action drives the sequential merge state machine: switch,
// update, then one merge per revision, with a full revert of the working
// copy on any failure.
package actions

import (
	"context"
	"errors"
	"fmt"

	"svnpick.dev/svnpick/internal/output"
	"svnpick.dev/svnpick/internal/plan"
	"svnpick.dev/svnpick/internal/runtime"
)

// ConflictPolicy decides what happens when a revision merge fails.
// The policy is selected once, before the run starts.
type ConflictPolicy interface {
	// OnMergeFailure is invoked with the revision whose merge failed and
	// the merge error. A nil return means the failure is considered
	// handled and the run proceeds to the next revision; a non-nil
	// return aborts the run with a full revert.
	OnMergeFailure(ctx context.Context, rctx *runtime.Context, revision string, mergeErr error) error
}

// AbortPolicy treats any merge failure as fatal. The run stops at the
// first conflicting revision.
type AbortPolicy struct{}

// OnMergeFailure returns the merge error unchanged.
func (AbortPolicy) OnMergeFailure(_ context.Context, _ *runtime.Context, _ string, mergeErr error) error {
	return mergeErr
}

// InteractivePolicy hands conflict resolution to the context's external
// tool. The executor trusts a clean tool exit to mean the operator
// resolved and marked the conflicts; it does not verify the result.
type InteractivePolicy struct{}

// OnMergeFailure launches the interactive resolution tool and blocks
// until the operator closes it.
func (InteractivePolicy) OnMergeFailure(ctx context.Context, rctx *runtime.Context, revision string, mergeErr error) error {
	splog := rctx.Splog

	splog.Info("Conflict detected during merge of revision %s:\n%v", revision, mergeErr)
	if rctx.Resolver == nil {
		return mergeErr
	}

	splog.Info("Launching conflict resolution tool...")
	if err := rctx.Resolver.Resolve(ctx, rctx.Client.WorkingDir()); err != nil {
		return err
	}
	splog.Info("Please resolve conflicts using the tool and then mark them as resolved.")
	return nil
}

// RunOptions contains options for the run command
type RunOptions struct {
	Plan   *plan.Plan
	Policy ConflictPolicy
	DryRun bool

	// Confirm prompts before mutating the working copy. Skipped when
	// stdout is not a terminal.
	Confirm bool
}

// Run applies the merge plan to the working copy. On any failure after
// the working copy has been touched, all uncommitted changes are
// reverted before the error is reported; a failed run never leaves a
// partially merged working copy behind.
func Run(ctx context.Context, rctx *runtime.Context, opts RunOptions) error {
	client := rctx.Client
	splog := rctx.Splog

	p := opts.Plan
	if err := p.Validate(); err != nil {
		return err
	}

	policy := opts.Policy
	if policy == nil {
		policy = AbortPolicy{}
	}

	if opts.DryRun {
		splog.Info("%s", output.FormatPlan(p, stdoutIsTerminal()))
		splog.Info("Dry run: no working copy changes were made.")
		return nil
	}

	if opts.Confirm {
		confirmed, err := promptConfirm(fmt.Sprintf("Merge %d revision(s) from %s into %s?", len(p.Revisions), p.SourceBranch, p.TargetBranch))
		if err != nil {
			if errors.Is(err, ErrInteractiveDisabled) {
				confirmed = true
			} else {
				return err
			}
		}
		if !confirmed {
			splog.Info("Merge canceled")
			return nil
		}
	}

	// Preflight: make sure the target is a usable working copy before
	// mutating it. Nothing has changed yet, so a failure here needs no
	// revert.
	info, err := client.Info(ctx)
	if err != nil {
		return err
	}
	splog.Debug("%s", info)

	splog.Info("Switching to branch: %s", p.TargetBranch)
	if err := client.Switch(ctx, p.TargetBranch); err != nil {
		splog.Error("An error occurred:\n%v", err)
		return revertAndFail(ctx, rctx, err)
	}

	splog.Info("Updating working directory to the latest revision...")
	if err := client.Update(ctx); err != nil {
		splog.Error("An error occurred:\n%v", err)
		return revertAndFail(ctx, rctx, err)
	}

	for _, revision := range p.Revisions {
		splog.Info("Merging revision %s from %s...", revision, p.SourceBranch)
		if err := client.Merge(ctx, revision, p.SourceBranch); err != nil {
			if policyErr := policy.OnMergeFailure(ctx, rctx, revision, err); policyErr != nil {
				splog.Error("Failed to merge revision %s:\n%v", revision, policyErr)
				return revertAndFail(ctx, rctx, policyErr)
			}
			continue
		}
		splog.Info("Successfully merged revision %s to local working directory.", revision)
	}

	splog.Info("All revisions processed! Please review the changes in your working directory before committing.")
	return nil
}

// revertAndFail discards all run-local working copy modifications and
// returns the original error. The revert itself failing is reported but
// never masks the cause.
func revertAndFail(ctx context.Context, rctx *runtime.Context, cause error) error {
	splog := rctx.Splog

	splog.Info("Reverting all changes in the working directory...")
	if err := rctx.Client.Revert(ctx); err != nil {
		splog.Warn("Revert failed: %v", err)
	}
	return cause
}
