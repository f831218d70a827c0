package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svnpick.dev/svnpick/internal/plan"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1"))
	revisionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
)

// FormatPlan renders a merge plan for display. When styled is false the
// output is plain text, suitable for non-TTY destinations.
func FormatPlan(p *plan.Plan, styled bool) string {
	header := fmt.Sprintf("Merge plan: %d revision(s)", len(p.Revisions))
	rows := []struct {
		label string
		value string
	}{
		{"source branch", p.SourceBranch},
		{"target branch", p.TargetBranch},
		{"working copy", p.WorkingDir},
	}

	var b strings.Builder
	if styled {
		b.WriteString(headerStyle.Render(header))
	} else {
		b.WriteString(header)
	}
	b.WriteString("\n")

	for _, row := range rows {
		label := row.label
		if styled {
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(&b, "  %s: %s\n", label, row.value)
	}

	b.WriteString("  revisions (in order):\n")
	for i, rev := range p.Revisions {
		display := rev
		if styled {
			display = revisionStyle.Render(display)
		}
		fmt.Fprintf(&b, "    %d. r%s\n", i+1, display)
	}

	return b.String()
}
