// Package trace provides decision-trace recording for batch planning.
// This package has no dependencies on planner/ and stores pure data types.
package trace

// BatchRecord captures a single closed batch and its place on the timeline.
type BatchRecord struct {
	Index     int      `json:"index"`
	JobIDs    []string `json:"job_ids"`
	Volume    float64  `json:"volume"`
	StartTime int64    `json:"start_time"`
	EndTime   int64    `json:"end_time"` // StartTime + slowest member's print time
}

// Duration returns the batch's length on the timeline.
func (r BatchRecord) Duration() int64 {
	return r.EndTime - r.StartTime
}

// RejectionRecord captures a job that could not be admitted to any batch.
type RejectionRecord struct {
	JobID  string `json:"job_id"`
	Pass   int    `json:"pass"` // formation pass on which the job was rejected
	Reason string `json:"reason"`
}
