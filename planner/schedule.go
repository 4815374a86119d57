package planner

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Schedule packs jobs into sequential batches under c and returns the plan.
//
// Jobs are attempted in ascending priority order (stable). Each pass scans the
// remaining jobs once and admits every job that keeps the batch within
// MaxVolume and below MaxItems; a job skipped on a pass waits for the next one.
// Jobs that cannot be printed even alone are reported in Plan.Unschedulable and
// scheduling continues with the rest.
//
// The input slice is not modified. Malformed input returns an error wrapping
// ErrInvalidInput and no plan.
func Schedule(jobs []Job, c Constraints) (*Plan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateJobs(jobs); err != nil {
		return nil, err
	}

	remaining := slices.Clone(jobs)
	SortByPriority(remaining)
	return schedule(remaining, c, formBatch), nil
}

// batchFormer runs one pass over the remaining jobs and returns the admitted
// batch and the jobs left over.
type batchFormer func(remaining []Job, c Constraints) (*Batch, []Job)

// schedule drives the passes over already validated and ordered jobs.
func schedule(remaining []Job, c Constraints, form batchFormer) *Plan {
	plan := newPlan(c)
	for pass := 0; len(remaining) > 0; pass++ {
		batch, next := form(remaining, c)

		// An empty pass means the head job does not fit an empty batch.
		if batch.Len() == 0 {
			head := remaining[0]
			if reason, ok := c.admits(head); ok {
				batch.Jobs = append(batch.Jobs, head)
			} else {
				logrus.Warnf("[pass %03d] job %s cannot be printed: %s (volume=%g, max_volume=%g, max_items=%d)",
					pass, head.ID, reason, head.Volume, c.MaxVolume, c.MaxItems)
				plan.reject(head, reason, pass)
			}
			next = next[1:]
		}

		if len(next) >= len(remaining) {
			logrus.Errorf("[pass %03d] could not form a batch, abandoning %d remaining jobs", pass, len(remaining))
			for _, j := range remaining {
				plan.reject(j, ReasonFormationFailed, pass)
			}
			break
		}

		if batch.Len() > 0 {
			plan.closeBatch(batch)
			logrus.Debugf("[pass %03d] batch %d: jobs=%v volume=%g/%g duration=%d",
				pass, len(plan.Batches)-1, batch.IDs(), batch.Volume(), c.MaxVolume, batch.Duration())
		}
		remaining = next
	}
	return plan
}

// formBatch runs a single forward pass over remaining and returns the admitted
// batch together with the jobs left for later passes, in their original order.
// A job that does not fit is not reconsidered on the same pass, even if a later
// job would leave room for it.
func formBatch(remaining []Job, c Constraints) (*Batch, []Job) {
	batch := &Batch{}
	next := make([]Job, 0, len(remaining))
	volume := 0.0
	for _, j := range remaining {
		if volume+j.Volume <= c.MaxVolume && batch.Len() < c.MaxItems {
			batch.Jobs = append(batch.Jobs, j)
			volume += j.Volume
			continue
		}
		next = append(next, j)
	}
	return batch, next
}
