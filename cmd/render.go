package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inference-sim/batch-planner/planner"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	batchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// renderPlan renders a plan as a boxed, human-readable table.
func renderPlan(plan *planner.Plan, c planner.Constraints) string {
	lines := []string{
		headerStyle.Render(fmt.Sprintf("Print plan · max_volume=%g · max_items=%d", c.MaxVolume, c.MaxItems)),
	}
	for i, rec := range plan.Trace.Batches {
		lines = append(lines, batchStyle.Render(fmt.Sprintf("Batch %d  t=%d→%d  volume=%g  %s",
			i+1, rec.StartTime, rec.EndTime, rec.Volume, strings.Join(rec.JobIDs, ", "))))
	}
	if len(plan.Batches) == 0 {
		lines = append(lines, batchStyle.Render("No batches"))
	}
	for _, d := range plan.Unschedulable {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("Unschedulable %s: %s", d.JobID, d.Reason)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Print order: %s", strings.Join(plan.Order, ", ")),
		fmt.Sprintf("Total time: %d minutes", plan.TotalTime),
	)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
