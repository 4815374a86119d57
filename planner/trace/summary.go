package trace

// TraceSummary aggregates statistics from a PlanTrace.
type TraceSummary struct {
	BatchCount            int            `json:"batch_count"`
	ScheduledCount        int            `json:"scheduled_count"`
	RejectedCount         int            `json:"rejected_count"`
	MakeSpan              int64          `json:"make_span"`
	MeanBatchSize         float64        `json:"mean_batch_size"`
	MeanVolumeUtilization float64        `json:"mean_volume_utilization"` // 0 when MaxVolume is 0
	LongestBatch          int64          `json:"longest_batch"`
	RejectionsByReason    map[string]int `json:"rejections_by_reason"`
}

// Summarize computes aggregate statistics from a PlanTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(pt *PlanTrace) *TraceSummary {
	summary := &TraceSummary{
		RejectionsByReason: make(map[string]int),
	}
	if pt == nil {
		return summary
	}

	for _, r := range pt.Rejections {
		summary.RejectionsByReason[r.Reason]++
	}
	summary.RejectedCount = len(pt.Rejections)

	if len(pt.Batches) == 0 {
		return summary
	}

	summary.BatchCount = len(pt.Batches)
	totalUtil := 0.0
	for _, b := range pt.Batches {
		summary.ScheduledCount += len(b.JobIDs)
		summary.MakeSpan = max(summary.MakeSpan, b.EndTime)
		summary.LongestBatch = max(summary.LongestBatch, b.Duration())
		if pt.MaxVolume > 0 {
			totalUtil += b.Volume / pt.MaxVolume
		}
	}
	summary.MeanBatchSize = float64(summary.ScheduledCount) / float64(summary.BatchCount)
	summary.MeanVolumeUtilization = totalUtil / float64(summary.BatchCount)

	return summary
}
