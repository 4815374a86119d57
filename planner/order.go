package planner

import "sort"

// SortByPriority orders jobs ascending by priority in place.
// The sort is stable: jobs sharing a priority keep their input order.
func SortByPriority(jobs []Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Priority < jobs[j].Priority
	})
}
