package sorting

import "slices"

// CountingSpanLimit is the widest max-min range Counting tallies directly.
const CountingSpanLimit = 1 << 24

// Counting sorts the ints in a in place by tallying each value between
// min(a) and max(a). Negative values are handled by offsetting with min(a).
// Memory is O(max-min), so it suits dense value ranges only; when
// max-min reaches CountingSpanLimit the slice is sorted with Quick instead.
func Counting(a []int) {
	if len(a) < 2 {
		return
	}
	lo, hi := slices.Min(a), slices.Max(a)
	span := uint(hi) - uint(lo) // exact even when hi-lo overflows int
	if span >= CountingSpanLimit {
		Quick(a)

		return
	}
	counts := make([]int, span+1)
	for _, v := range a {
		counts[v-lo]++
	}
	k := 0
	for off, c := range counts {
		for ; c > 0; c-- {
			a[k] = off + lo
			k++
		}
	}
}

// Radix sorts non-negative ints in place, least significant decimal digit
// first, with a stable counting pass per digit.
//
// Errors:
//   - ErrNegativeInput if any element is negative; a is left untouched.
func Radix(a []int) error {
	if len(a) < 2 {
		if len(a) == 1 && a[0] < 0 {
			return ErrNegativeInput
		}

		return nil
	}
	hi := 0
	for _, v := range a {
		if v < 0 {
			return ErrNegativeInput
		}
		hi = max(hi, v)
	}

	out := make([]int, len(a))
	for exp := 1; hi/exp > 0; exp *= 10 {
		var count [10]int
		for _, v := range a {
			count[(v/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1] // prefix sums: end position per digit
		}
		for i := len(a) - 1; i >= 0; i-- { // backwards keeps it stable
			d := (a[i] / exp) % 10
			count[d]--
			out[count[d]] = a[i]
		}
		copy(a, out)
		if exp > hi/10 {
			break // next exp would overflow past hi
		}
	}

	return nil
}
