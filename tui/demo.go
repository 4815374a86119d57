package tui

import (
	"fmt"
	"strings"

	"github.com/inference-sim/batch-planner/minmax"
	"github.com/inference-sim/batch-planner/planner"
)

var demoArrays = [][]int{
	{3, 5, 1, 9, -2, 7, 8, 4, 6, 0},
	{100, 20, 300, 4, 500, -10, 0, 1000},
	{42},
}

var demoConstraints = planner.Constraints{MaxVolume: 300, MaxItems: 2}

var demoJobSets = []struct {
	title string
	jobs  []planner.Job
}{
	{"Test 1 (same priority)", []planner.Job{
		{ID: "M1", Volume: 100, Priority: 1, PrintTime: 120},
		{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},
		{ID: "M3", Volume: 120, Priority: 1, PrintTime: 150},
	}},
	{"Test 2 (different priorities)", []planner.Job{
		{ID: "M1", Volume: 100, Priority: 2, PrintTime: 120}, // lab work
		{ID: "M2", Volume: 150, Priority: 1, PrintTime: 90},  // thesis
		{ID: "M3", Volume: 120, Priority: 3, PrintTime: 150}, // personal project
	}},
	{"Test 3 (exceeding constraints)", []planner.Job{
		{ID: "M1", Volume: 250, Priority: 1, PrintTime: 180},
		{ID: "M2", Volume: 200, Priority: 1, PrintTime: 150},
		{ID: "M3", Volume: 180, Priority: 2, PrintTime: 120},
	}},
}

// runMinMaxDemo prints min and max for each demo array.
func runMinMaxDemo() string {
	var sb strings.Builder
	for i, arr := range demoArrays {
		if i > 0 {
			sb.WriteString(strings.Repeat("-", 20) + "\n")
		}
		lo, hi, _ := minmax.Find(arr)
		fmt.Fprintf(&sb, "Array: %v\nMinimum element: %d\nMaximum element: %d\n", arr, lo, hi)
	}
	return sb.String()
}

// runPrintingDemo plans each demo job set against the demo printer.
func runPrintingDemo() string {
	var sb strings.Builder
	for i, set := range demoJobSets {
		if i > 0 {
			sb.WriteString("\n")
		}
		plan, err := planner.Schedule(set.jobs, demoConstraints)
		if err != nil {
			fmt.Fprintf(&sb, "%s: %v\n", set.title, err)
			continue
		}
		fmt.Fprintf(&sb, "%s:\nPrint order: %v\nTotal time: %d minutes\n", set.title, plan.Order, plan.TotalTime)
		for _, d := range plan.Unschedulable {
			fmt.Fprintf(&sb, "Warning: job %s cannot be printed: %s\n", d.JobID, d.Reason)
		}
	}
	return sb.String()
}
