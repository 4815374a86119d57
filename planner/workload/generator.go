package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/inference-sim/batch-planner/planner"
)

// GeneratorSpec describes a synthetic job population.
// Values are drawn uniformly from the closed ranges below.
type GeneratorSpec struct {
	Seed           int64   `yaml:"seed"`
	Count          int     `yaml:"count"`
	VolumeMin      float64 `yaml:"volume_min"`
	VolumeMax      float64 `yaml:"volume_max"`
	PriorityLevels int     `yaml:"priority_levels"` // priorities are 1..PriorityLevels
	PrintTimeMin   int64   `yaml:"print_time_min"`
	PrintTimeMax   int64   `yaml:"print_time_max"`
	IDPrefix       string  `yaml:"id_prefix,omitempty"` // default "job_"
}

// Validate checks generator ranges.
func (g GeneratorSpec) Validate() error {
	if g.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", g.Count)
	}
	if g.VolumeMin < 0 || math.IsNaN(g.VolumeMin) {
		return fmt.Errorf("volume_min must be non-negative, got %v", g.VolumeMin)
	}
	if g.VolumeMax < g.VolumeMin || math.IsNaN(g.VolumeMax) || math.IsInf(g.VolumeMax, 0) {
		return fmt.Errorf("volume_max must be finite and >= volume_min (%v), got %v", g.VolumeMin, g.VolumeMax)
	}
	if g.PriorityLevels < 1 {
		return fmt.Errorf("priority_levels must be >= 1, got %d", g.PriorityLevels)
	}
	if g.PrintTimeMin < 0 {
		return fmt.Errorf("print_time_min must be non-negative, got %d", g.PrintTimeMin)
	}
	if g.PrintTimeMax < g.PrintTimeMin {
		return fmt.Errorf("print_time_max must be >= print_time_min (%d), got %d", g.PrintTimeMin, g.PrintTimeMax)
	}
	// the draw needs span+1 to fit in an int64
	if g.PrintTimeMax-g.PrintTimeMin == math.MaxInt64 {
		return fmt.Errorf("print time range [%d, %d] is too wide", g.PrintTimeMin, g.PrintTimeMax)
	}
	return nil
}

// GenerateJobs creates Count jobs from g.
// Deterministic given the same spec and seed; ids are IDPrefix + index.
func GenerateJobs(g GeneratorSpec) ([]planner.Job, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	prefix := g.IDPrefix
	if prefix == "" {
		prefix = "job_"
	}

	rng := rand.New(rand.NewSource(g.Seed))
	jobs := make([]planner.Job, g.Count)
	for i := range jobs {
		volume := g.VolumeMin + rng.Float64()*(g.VolumeMax-g.VolumeMin)
		// two decimals keeps generated files readable
		volume = math.Min(math.Round(volume*100)/100, g.VolumeMax)
		volume = math.Max(volume, g.VolumeMin)
		jobs[i] = planner.Job{
			ID:        fmt.Sprintf("%s%d", prefix, i),
			Volume:    volume,
			Priority:  1 + rng.Intn(g.PriorityLevels),
			PrintTime: g.PrintTimeMin + rng.Int63n(g.PrintTimeMax-g.PrintTimeMin+1),
		}
	}
	return jobs, nil
}
