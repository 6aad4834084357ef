package bsearch

import "cmp"

// Search returns the index of target in the ascending slice a, or NotFound.
// When target occurs several times any matching index may be returned.
//
// Invariant: if target is present, it lies in a[lo..hi].
// Time: O(log n). Memory: O(1).
func Search[T cmp.Ordered](a []T, target T) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // no overflow on huge slices
		switch {
		case a[mid] == target:
			return mid
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// SearchRecursive has the same contract as Search but halves the range recursively.
func SearchRecursive[T cmp.Ordered](a []T, target T) int {
	return searchRange(a, target, 0, len(a)-1)
}

func searchRange[T cmp.Ordered](a []T, target T, lo, hi int) int {
	if lo > hi {
		return NotFound
	}
	mid := lo + (hi-lo)/2
	if a[mid] > target {
		return searchRange(a, target, lo, mid-1)
	}
	if a[mid] < target {
		return searchRange(a, target, mid+1, hi)
	}

	return mid
}

// LowerBound returns the first index i with a[i] >= target, or len(a).
func LowerBound[T cmp.Ordered](a []T, target T) int {
	return SearchFunc(len(a), func(i int) bool { return a[i] >= target })
}

// UpperBound returns the first index i with a[i] > target, or len(a).
func UpperBound[T cmp.Ordered](a []T, target T) int {
	return SearchFunc(len(a), func(i int) bool { return a[i] > target })
}

// SearchFunc returns the smallest index i in [0, n) for which pred(i) is true,
// assuming pred is false…false true…true over the range. It returns n if
// pred is false everywhere.
func SearchFunc(n int, pred func(int) bool) int {
	lo, hi := 0, n // answer lies in [lo, hi]
	for lo < hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// SearchRange returns the first and last positions of target in the ascending
// slice a, or {NotFound, NotFound} if target does not occur.
func SearchRange(a []int, target int) [2]int {
	first := LowerBound(a, target)
	if first == len(a) || a[first] != target {
		return [2]int{NotFound, NotFound}
	}

	return [2]int{first, UpperBound(a, target) - 1}
}

// SearchInsert returns the index of target in a, or the index where it
// would be inserted to keep a sorted.
func SearchInsert(a []int, target int) int {
	return LowerBound(a, target)
}
