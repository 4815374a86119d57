// batch.go
//
// Defines the Batch struct which represents a group of jobs printed together.

package planner

// Batch is a group of jobs printed simultaneously.
// Members run in parallel, so the batch lasts as long as its slowest job.
type Batch struct {
	Jobs []Job `json:"jobs"` // in the order they were admitted
}

// Duration returns the maximum print time among the batch members.
func (b *Batch) Duration() int64 {
	var d int64
	for _, j := range b.Jobs {
		d = max(d, j.PrintTime)
	}
	return d
}

// Volume returns the total volume of the batch members.
func (b *Batch) Volume() float64 {
	var v float64
	for _, j := range b.Jobs {
		v += j.Volume
	}
	return v
}

// Len returns the number of jobs in the batch.
func (b *Batch) Len() int {
	return len(b.Jobs)
}

// IDs returns the member ids in admission order.
func (b *Batch) IDs() []string {
	ids := make([]string, len(b.Jobs))
	for i, j := range b.Jobs {
		ids[i] = j.ID
	}
	return ids
}
