package bsearch

import "math"

// MedianOfTwoSorted returns the median of the multiset union of the
// ascending slices a and b.
//
// Algorithm Outline:
//  1. Binary search a cut i in the shorter slice; the cut in the longer
//     one is j = ⌈(n+m)/2⌉ - i so that the left side holds half the values.
//  2. The cut is valid when maxLeft(a) <= minRight(b) and
//     maxLeft(b) <= minRight(a).
//  3. Odd total: median = max of the left side. Even total: mean of
//     max(left) and min(right).
//
// Complexity: O(log(min(n, m))) time, O(1) memory.
//
// Errors:
//   - ErrEmptyInput if both slices are empty.
func MedianOfTwoSorted(a, b []int) (float64, error) {
	if len(a) > len(b) {
		a, b = b, a
	}
	m, n := len(a), len(b)
	if m+n == 0 {
		return 0, ErrEmptyInput
	}

	half := (m + n + 1) / 2
	lo, hi := 0, m
	for lo <= hi {
		i := lo + (hi-lo)/2
		j := half - i

		aLeft, aRight := edge(a, i-1, math.MinInt), edge(a, i, math.MaxInt)
		bLeft, bRight := edge(b, j-1, math.MinInt), edge(b, j, math.MaxInt)

		switch {
		case aLeft > bRight:
			hi = i - 1
		case bLeft > aRight:
			lo = i + 1
		default:
			left := max(aLeft, bLeft)
			if (m+n)%2 == 1 {
				return float64(left), nil
			}
			right := min(aRight, bRight)

			return (float64(left) + float64(right)) / 2, nil
		}
	}

	// unreachable for sorted input
	return 0, ErrEmptyInput
}

// edge returns s[i], or fallback when i is outside s.
func edge(s []int, i, fallback int) int {
	if i < 0 || i >= len(s) {
		return fallback
	}

	return s[i]
}
