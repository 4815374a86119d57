// Package minmax finds the minimum and maximum of a slice by divide and conquer.
package minmax

import "cmp"

// Find returns the smallest and largest elements of xs.
// ok is false when xs is empty. The slice is split in halves recursively and
// the partial results are combined, so the recursion depth is O(log n).
func Find[T cmp.Ordered](xs []T) (lo, hi T, ok bool) {
	if len(xs) == 0 {
		return lo, hi, false
	}
	lo, hi = find(xs)
	return lo, hi, true
}

func find[T cmp.Ordered](xs []T) (T, T) {
	if len(xs) == 1 {
		return xs[0], xs[0]
	}
	mid := len(xs) / 2
	lo1, hi1 := find(xs[:mid])
	lo2, hi2 := find(xs[mid:])
	return min(lo1, lo2), max(hi1, hi2)
}
