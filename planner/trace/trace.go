package trace

// PlanTrace collects batch and rejection records during one planning run.
type PlanTrace struct {
	MaxVolume  float64
	MaxItems   int
	Batches    []BatchRecord
	Rejections []RejectionRecord
}

// NewPlanTrace creates a PlanTrace ready for recording under the given limits.
func NewPlanTrace(maxVolume float64, maxItems int) *PlanTrace {
	return &PlanTrace{
		MaxVolume:  maxVolume,
		MaxItems:   maxItems,
		Batches:    make([]BatchRecord, 0),
		Rejections: make([]RejectionRecord, 0),
	}
}

// RecordBatch appends a batch record.
func (pt *PlanTrace) RecordBatch(record BatchRecord) {
	pt.Batches = append(pt.Batches, record)
}

// RecordRejection appends a rejection record.
func (pt *PlanTrace) RecordRejection(record RejectionRecord) {
	pt.Rejections = append(pt.Rejections, record)
}
