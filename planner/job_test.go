package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobValidate_RejectsMalformedFields(t *testing.T) {
	tests := []struct {
		name string
		job  Job
	}{
		{"empty id", Job{ID: "", Volume: 1, PrintTime: 1}},
		{"negative volume", Job{ID: "a", Volume: -1, PrintTime: 1}},
		{"nan volume", Job{ID: "a", Volume: math.NaN(), PrintTime: 1}},
		{"infinite volume", Job{ID: "a", Volume: math.Inf(1), PrintTime: 1}},
		{"negative print time", Job{ID: "a", Volume: 1, PrintTime: -5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.job.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "error must wrap ErrInvalidInput: %v", err)
		})
	}
}

func TestJobValidate_AcceptsZeroValuesAndAnyPriority(t *testing.T) {
	for _, j := range []Job{
		{ID: "zero", Volume: 0, Priority: 0, PrintTime: 0},
		{ID: "negative-priority", Volume: 10, Priority: -7, PrintTime: 3},
		{ID: "large-priority", Volume: 10, Priority: math.MaxInt32, PrintTime: 3},
	} {
		assert.NoError(t, j.Validate(), "job %s", j.ID)
	}
}

func TestValidateJobs_DuplicateID(t *testing.T) {
	// GIVEN two jobs sharing an id
	jobs := []Job{
		{ID: "M1", Volume: 10, PrintTime: 1},
		{ID: "M2", Volume: 10, PrintTime: 1},
		{ID: "M1", Volume: 20, PrintTime: 2},
	}

	// WHEN validated
	err := ValidateJobs(jobs)

	// THEN the duplicate is reported with both positions
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), `"M1"`)
	assert.Contains(t, err.Error(), "jobs[0]")
	assert.Contains(t, err.Error(), "jobs[2]")
}

func TestValidateJobs_ReportsIndexOfBadJob(t *testing.T) {
	jobs := []Job{
		{ID: "ok", Volume: 10, PrintTime: 1},
		{ID: "bad", Volume: -10, PrintTime: 1},
	}
	err := ValidateJobs(jobs)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "jobs[1]")
}

func TestConstraintsValidate(t *testing.T) {
	assert.NoError(t, Constraints{MaxVolume: 0, MaxItems: 0}.Validate())
	assert.NoError(t, Constraints{MaxVolume: 300, MaxItems: -3}.Validate(), "negative max_items is allowed")
	assert.ErrorIs(t, Constraints{MaxVolume: -1, MaxItems: 2}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Constraints{MaxVolume: math.NaN(), MaxItems: 2}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Constraints{MaxVolume: math.Inf(1), MaxItems: 2}.Validate(), ErrInvalidInput)
}

func TestConstraintsAdmits(t *testing.T) {
	c := Constraints{MaxVolume: 300, MaxItems: 2}

	_, ok := c.admits(Job{ID: "fits", Volume: 300})
	assert.True(t, ok, "volume equal to the limit fits")

	reason, ok := c.admits(Job{ID: "big", Volume: 300.5})
	assert.False(t, ok)
	assert.Equal(t, ReasonExceedsMaxVolume, reason)

	reason, ok = Constraints{MaxVolume: 300, MaxItems: 0}.admits(Job{ID: "any", Volume: 1})
	assert.False(t, ok)
	assert.Equal(t, ReasonExceedsMaxItems, reason)
}
