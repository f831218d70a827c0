package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svnpick.dev/svnpick/internal/actions"
	"svnpick.dev/svnpick/internal/runtime"
)

// newRevertCmd creates the revert command
func newRevertCmd() *cobra.Command {
	var (
		workingDir string
		showStatus bool
	)

	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Recursively revert all uncommitted changes in a working copy",
		Long: `Recursively revert all uncommitted changes in a working copy.

This is the same revert the run command performs when a merge fails,
exposed for manual cleanup. It is safe to run on an already-clean
working copy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if workingDir == "" {
				return fmt.Errorf("--working-dir is required")
			}

			rctx := runtime.NewContextForWorkingDir(workingDir, "")
			defer rctx.Splog.Close()

			return actions.Revert(cmd.Context(), rctx, actions.RevertOptions{
				ShowStatus: showStatus,
			})
		},
	}

	cmd.Flags().StringVarP(&workingDir, "working-dir", "w", "", "Path to the working copy")
	cmd.Flags().BoolVar(&showStatus, "status", false, "Show working copy status after reverting")

	return cmd
}
