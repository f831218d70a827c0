// Package cli wires the svnpick commands together with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "svnpick",
		Short: "svnpick merges an ordered list of SVN revisions from a source branch into a working copy",
		Long: `svnpick merges an ordered list of SVN revisions from a source branch into
a target working copy, one revision at a time, and reverts the working copy
completely if anything fails. No partial merge is ever left behind.

The merge plan (source branch, target branch, working directory, revisions)
is read from a JSON or YAML plan file.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newRevertCmd())

	return rootCmd
}
