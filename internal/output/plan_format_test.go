package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svnpick.dev/svnpick/internal/output"
	"svnpick.dev/svnpick/internal/plan"
)

func TestFormatPlan(t *testing.T) {
	p := &plan.Plan{
		SourceBranch: "/branches/feature",
		TargetBranch: "/trunk",
		WorkingDir:   "/wc",
		Revisions:    []string{"105", "101", "103"},
	}

	out := output.FormatPlan(p, false)

	require.Contains(t, out, "Merge plan: 3 revision(s)")
	require.Contains(t, out, "source branch: /branches/feature")
	require.Contains(t, out, "target branch: /trunk")
	require.Contains(t, out, "working copy: /wc")

	// Listed in plan order, not numeric order
	i105 := strings.Index(out, "1. r105")
	i101 := strings.Index(out, "2. r101")
	i103 := strings.Index(out, "3. r103")
	require.True(t, i105 >= 0 && i101 > i105 && i103 > i101)
}
