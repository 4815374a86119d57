package planner

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation error returned before scheduling starts.
var ErrInvalidInput = errors.New("invalid input")

// Job is a single print job submitted to the planner.
type Job struct {
	ID        string  `json:"id" yaml:"id"`
	Volume    float64 `json:"volume" yaml:"volume"`         // material volume, must be >= 0
	Priority  int     `json:"priority" yaml:"priority"`     // lower value = more urgent
	PrintTime int64   `json:"print_time" yaml:"print_time"` // duration, must be >= 0
}

// Constraints bound every batch uniformly.
// MaxItems < 1 is accepted and makes every job unschedulable.
type Constraints struct {
	MaxVolume float64 `json:"max_volume" yaml:"max_volume"`
	MaxItems  int     `json:"max_items" yaml:"max_items"`
}

// Validate checks the constraint ranges.
func (c Constraints) Validate() error {
	if math.IsNaN(c.MaxVolume) || math.IsInf(c.MaxVolume, 0) {
		return fmt.Errorf("%w: max_volume must be finite, got %v", ErrInvalidInput, c.MaxVolume)
	}
	if c.MaxVolume < 0 {
		return fmt.Errorf("%w: max_volume must be non-negative, got %v", ErrInvalidInput, c.MaxVolume)
	}
	return nil
}

// admits reports whether j could be printed alone under c.
// The returned reason is empty when the job fits.
func (c Constraints) admits(j Job) (Reason, bool) {
	if j.Volume > c.MaxVolume {
		return ReasonExceedsMaxVolume, false
	}
	if c.MaxItems < 1 {
		return ReasonExceedsMaxItems, false
	}
	return "", true
}

// Validate checks a single job's fields.
func (j Job) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("%w: job id must not be empty", ErrInvalidInput)
	}
	if math.IsNaN(j.Volume) || math.IsInf(j.Volume, 0) {
		return fmt.Errorf("%w: job %s: volume must be finite, got %v", ErrInvalidInput, j.ID, j.Volume)
	}
	if j.Volume < 0 {
		return fmt.Errorf("%w: job %s: volume must be non-negative, got %v", ErrInvalidInput, j.ID, j.Volume)
	}
	if j.PrintTime < 0 {
		return fmt.Errorf("%w: job %s: print_time must be non-negative, got %d", ErrInvalidInput, j.ID, j.PrintTime)
	}
	return nil
}

// ValidateJobs checks every job and rejects duplicate ids.
func ValidateJobs(jobs []Job) error {
	seen := make(map[string]int, len(jobs))
	for i, j := range jobs {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if first, dup := seen[j.ID]; dup {
			return fmt.Errorf("%w: duplicate job id %q at jobs[%d] and jobs[%d]", ErrInvalidInput, j.ID, first, i)
		}
		seen[j.ID] = i
	}
	return nil
}
