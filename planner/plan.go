package planner

import (
	"github.com/inference-sim/batch-planner/planner/trace"
)

// Reason explains why a job was left out of the plan.
type Reason string

const (
	ReasonExceedsMaxVolume Reason = "exceeds max_volume"
	ReasonExceedsMaxItems  Reason = "exceeds max_items"
	// ReasonFormationFailed marks jobs abandoned when a pass made no progress.
	ReasonFormationFailed Reason = "batch formation failed"
)

// Diagnostic reports a job that could not be admitted to any batch.
type Diagnostic struct {
	JobID  string `json:"job_id"`
	Reason Reason `json:"reason"`
}

// Plan is the result of one planning run.
type Plan struct {
	Order         []string     `json:"print_order"`
	TotalTime     int64        `json:"total_time"`
	Batches       []*Batch     `json:"batches"`
	Unschedulable []Diagnostic `json:"unschedulable"`

	Trace *trace.PlanTrace `json:"-"`
}

func newPlan(c Constraints) *Plan {
	return &Plan{
		Order:         make([]string, 0),
		Batches:       make([]*Batch, 0),
		Unschedulable: make([]Diagnostic, 0),
		Trace:         trace.NewPlanTrace(c.MaxVolume, c.MaxItems),
	}
}

// closeBatch appends b to the plan and advances the clock by its duration.
func (p *Plan) closeBatch(b *Batch) {
	start := p.TotalTime
	p.TotalTime += b.Duration()
	p.Batches = append(p.Batches, b)
	p.Order = append(p.Order, b.IDs()...)
	p.Trace.RecordBatch(trace.BatchRecord{
		Index:     len(p.Batches) - 1,
		JobIDs:    b.IDs(),
		Volume:    b.Volume(),
		StartTime: start,
		EndTime:   p.TotalTime,
	})
}

func (p *Plan) reject(j Job, reason Reason, pass int) {
	p.Unschedulable = append(p.Unschedulable, Diagnostic{JobID: j.ID, Reason: reason})
	p.Trace.RecordRejection(trace.RejectionRecord{
		JobID:  j.ID,
		Pass:   pass,
		Reason: string(reason),
	})
}

// Summary aggregates the plan's trace.
func (p *Plan) Summary() *trace.TraceSummary {
	return trace.Summarize(p.Trace)
}
