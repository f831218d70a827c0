package cli

import (
	"github.com/spf13/cobra"

	"svnpick.dev/svnpick/internal/actions"
	"svnpick.dev/svnpick/internal/plan"
	"svnpick.dev/svnpick/internal/runtime"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var (
		planPath     string
		interactive  bool
		yes          bool
		dryRun       bool
		tortoisePath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply the merge plan to the working copy",
		Long: `Apply the merge plan to the working copy.

The working copy is switched to the target branch, updated, then each
revision is merged in plan order with conflicts auto-resolved in favor of
the incoming change. Any failure reverts the working copy completely.

With --interactive, a merge failure hands conflict resolution to
TortoiseSVN instead of aborting; the run continues once the tool exits
cleanly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := plan.Load(planPath)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			rctx := runtime.NewContextForWorkingDir(p.WorkingDir, tortoisePath)
			defer rctx.Splog.Close()

			var policy actions.ConflictPolicy = actions.AbortPolicy{}
			if interactive {
				policy = actions.InteractivePolicy{}
			}

			return actions.Run(cmd.Context(), rctx, actions.RunOptions{
				Plan:    p,
				Policy:  policy,
				DryRun:  dryRun,
				Confirm: !yes,
			})
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "config.json", "Path to the merge plan file (JSON or YAML)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Hand merge conflicts to TortoiseSVN instead of aborting")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the merge plan without executing")
	cmd.Flags().StringVar(&tortoisePath, "tortoise-path", "", "Path to the TortoiseProc executable (default: looked up on PATH)")

	return cmd
}
