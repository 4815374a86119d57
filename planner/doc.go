// Package planner packs print jobs into sequential batches under a volume
// capacity and an item-count capacity.
//
// # Reading Guide
//
// Start with these files:
//   - job.go: Job and Constraints, plus input validation
//   - order.go: stable priority ordering applied before batch formation
//   - schedule.go: the greedy batching loop and infeasible-job handling
//   - plan.go: the Plan result and its diagnostics
//
// # Algorithm
//
// Jobs are stable-sorted ascending by priority. Each pass scans the remaining
// jobs once, front to back, admitting a job only if the batch stays within
// MaxVolume and below MaxItems. A job skipped on a pass is not reconsidered
// until the next pass. When a pass admits nothing, the head job cannot be
// printed under the constraints and is reported as unschedulable.
//
// Batches run sequentially; jobs within a batch run in parallel, so a batch
// lasts as long as its slowest member.
//
// Sub-packages:
//   - planner/trace: pure record types for batch and rejection decisions
//   - planner/workload: job spec loading and seeded job generation
package planner
