package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svnpick.dev/svnpick/internal/plan"
)

// newValidateCmd creates the validate command
func newValidateCmd() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the merge plan is complete and well formed",
		Long: `Check that the merge plan is complete and well formed without touching
the working copy. Exits non-zero if the plan file is missing, cannot be
parsed, or lacks any required field.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := plan.Load(planPath)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan is valid: %d revision(s) from %s into %s\n",
				len(p.Revisions), p.SourceBranch, p.TargetBranch)
			return nil
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "config.json", "Path to the merge plan file (JSON or YAML)")

	return cmd
}
