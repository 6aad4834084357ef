package bsearch

// SearchRotated returns the index of target in a, an ascending slice of
// distinct values rotated at an unknown pivot (e.g. [4 5 6 7 0 1 2]),
// or NotFound.
//
// At every step one of the halves [lo, mid] or [mid, hi] is sorted; the
// target is kept only if it falls inside the sorted half's value range.
func SearchRotated(a []int, target int) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if a[mid] == target {
			return mid
		}
		if a[lo] <= a[mid] { // left half sorted
			if a[lo] <= target && target < a[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else { // right half sorted
			if a[mid] < target && target <= a[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}

	return NotFound
}

// FindMinRotated returns the minimum of a rotated ascending slice.
// Duplicates are tolerated; they degrade the worst case to O(n).
func FindMinRotated(a []int) (int, error) {
	if len(a) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := 0, len(a)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case a[mid] > a[hi]:
			lo = mid + 1 // minimum is right of mid
		case a[mid] < a[hi]:
			hi = mid
		default:
			hi-- // a[hi] has a twin at mid, drop it
		}
	}

	return a[lo], nil
}

// FindPeak returns the index of an element strictly greater than its
// neighbours, treating a[-1] and a[n] as -∞. Adjacent elements are assumed
// distinct.
func FindPeak(a []int) (int, error) {
	if len(a) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := 0, len(a)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if a[mid] > a[mid+1] {
			hi = mid // descending slope, a peak is at mid or left
		} else {
			lo = mid + 1
		}
	}

	return lo, nil
}

// Sqrt returns ⌊√x⌋ for x >= 0.
func Sqrt(x int) (int, error) {
	if x < 0 {
		return 0, ErrNegativeInput
	}
	ans := 0
	lo, hi := 1, x
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if mid <= x/mid { // mid*mid <= x without overflow
			ans = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return ans, nil
}

// SearchMatrix reports whether target is present in m, a rectangular
// matrix whose rows are sorted and whose first element of each row is
// greater than the last element of the previous row.
func SearchMatrix(m [][]int, target int) bool {
	if len(m) == 0 || len(m[0]) == 0 {
		return false
	}
	cols := len(m[0])
	lo, hi := 0, len(m)*cols-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := m[mid/cols][mid%cols]
		switch {
		case v == target:
			return true
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return false
}
