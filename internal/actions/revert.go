package actions

import (
	"context"

	"svnpick.dev/svnpick/internal/runtime"
)

// RevertOptions contains options for the revert command
type RevertOptions struct {
	// ShowStatus prints the working copy status after reverting.
	ShowStatus bool
}

// Revert recursively discards all uncommitted changes in the working
// copy. It is the same operation the run action performs on its failure
// path, exposed as a manual escape hatch, and is safe to repeat on an
// already-clean working copy.
func Revert(ctx context.Context, rctx *runtime.Context, opts RevertOptions) error {
	splog := rctx.Splog

	splog.Info("Reverting all changes in the working directory...")
	if err := rctx.Client.Revert(ctx); err != nil {
		return err
	}

	if opts.ShowStatus {
		status, err := rctx.Client.Status(ctx)
		if err != nil {
			return err
		}
		if status == "" {
			splog.Info("Working copy is clean.")
		} else {
			splog.Info("%s", status)
		}
	}

	splog.Info("Working copy reverted.")
	return nil
}
