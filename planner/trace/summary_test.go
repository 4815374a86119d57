package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.BatchCount)
	assert.Equal(t, 0, s.RejectedCount)
	assert.NotNil(t, s.RejectionsByReason)
}

func TestSummarize_BatchesAndRejections(t *testing.T) {
	// GIVEN a trace with two batches and two rejections
	pt := NewPlanTrace(300, 3)
	pt.RecordBatch(BatchRecord{Index: 0, JobIDs: []string{"a", "b", "c"}, Volume: 300, StartTime: 0, EndTime: 50})
	pt.RecordBatch(BatchRecord{Index: 1, JobIDs: []string{"d"}, Volume: 150, StartTime: 50, EndTime: 130})
	pt.RecordRejection(RejectionRecord{JobID: "x", Pass: 0, Reason: "exceeds max_volume"})
	pt.RecordRejection(RejectionRecord{JobID: "y", Pass: 2, Reason: "exceeds max_volume"})

	// WHEN summarized
	s := Summarize(pt)

	// THEN counts, span and utilization reflect the records
	assert.Equal(t, 2, s.BatchCount)
	assert.Equal(t, 4, s.ScheduledCount)
	assert.Equal(t, 2, s.RejectedCount)
	assert.Equal(t, int64(130), s.MakeSpan)
	assert.Equal(t, int64(80), s.LongestBatch)
	assert.InDelta(t, 2.0, s.MeanBatchSize, 1e-9)
	assert.InDelta(t, 0.75, s.MeanVolumeUtilization, 1e-9)
	assert.Equal(t, map[string]int{"exceeds max_volume": 2}, s.RejectionsByReason)
}

func TestSummarize_ZeroMaxVolumeHasZeroUtilization(t *testing.T) {
	pt := NewPlanTrace(0, 5)
	pt.RecordBatch(BatchRecord{Index: 0, JobIDs: []string{"flat"}, Volume: 0, StartTime: 0, EndTime: 5})

	s := Summarize(pt)
	assert.Equal(t, 1, s.BatchCount)
	assert.Equal(t, 0.0, s.MeanVolumeUtilization)
}
