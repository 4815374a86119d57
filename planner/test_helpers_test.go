package planner

import (
	"fmt"
	"math/rand"
)

// randomJobs returns n jobs drawn from a fixed seed so runs are reproducible.
// Volumes occasionally exceed maxVolume to exercise the rejection path.
func randomJobs(seed int64, n int, maxVolume float64) []Job {
	rng := rand.New(rand.NewSource(seed))
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{
			ID:        fmt.Sprintf("job_%d", i),
			Volume:    rng.Float64() * maxVolume * 1.2,
			Priority:  rng.Intn(5),
			PrintTime: int64(rng.Intn(300)),
		}
	}
	return jobs
}
