package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"svnpick.dev/svnpick/internal/output"
	"svnpick.dev/svnpick/internal/plan"
)

// newPlanCmd creates the plan command
func newPlanCmd() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the merge plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := plan.Load(planPath)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			fmt.Fprint(cmd.OutOrStdout(), output.FormatPlan(p, styled))
			return nil
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "config.json", "Path to the merge plan file (JSON or YAML)")

	return cmd
}
