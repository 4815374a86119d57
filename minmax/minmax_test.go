package minmax

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind_Examples(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		lo, hi int
	}{
		{"mixed", []int{3, 5, 1, 9, -2, 7, 8, 4, 6, 0}, -2, 9},
		{"wide range", []int{100, 20, 300, 4, 500, -10, 0, 1000}, -10, 1000},
		{"single", []int{42}, 42, 42},
		{"pair descending", []int{2, 1}, 1, 2},
		{"all equal", []int{5, 5, 5}, 5, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi, ok := Find(tc.input)
			assert.True(t, ok)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestFind_Empty(t *testing.T) {
	lo, hi, ok := Find[float64](nil)
	assert.False(t, ok)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestFind_Strings(t *testing.T) {
	lo, hi, ok := Find([]string{"pear", "apple", "zucchini", "melon"})
	assert.True(t, ok)
	assert.Equal(t, "apple", lo)
	assert.Equal(t, "zucchini", hi)
}

func TestFind_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 200; n++ {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.NormFloat64() * 1000
		}
		lo, hi, ok := Find(xs)
		assert.True(t, ok)
		assert.Equal(t, slices.Min(xs), lo, "n=%d", n)
		assert.Equal(t, slices.Max(xs), hi, "n=%d", n)
	}
}
