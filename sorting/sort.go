package sorting

import (
	"cmp"
	"slices"
)

// Sort orders a in place with the algorithm chosen by opts (QuickSort by
// default). WithDescending yields non-increasing order; stable algorithms
// still keep equal elements in their input order.
//
// Errors:
//   - ErrOptionViolation if an Option was invalid; a is left untouched.
func Sort[T cmp.Ordered](a []T, opts ...Option) error {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o.err
	}

	if o.Descending {
		slices.Reverse(a) // reverse, sort ascending, reverse back
	}
	switch o.Algorithm {
	case MergeSort:
		Merge(a)
	case HeapSort:
		Heap(a)
	case ShellSort:
		Shell(a)
	case InsertionSort:
		Insertion(a)
	case SelectionSort:
		Selection(a)
	case BubbleSort:
		Bubble(a)
	default:
		Quick(a)
	}
	if o.Descending {
		slices.Reverse(a)
	}

	return nil
}

// KthLargest returns the k-th largest element of a (k = 1 is the maximum)
// using iterative quickselect on a copy, so a is not modified.
// Expected O(n) time.
//
// Errors:
//   - ErrInvalidK if k < 1 or k > len(a).
func KthLargest(a []int, k int) (int, error) {
	if k < 1 || k > len(a) {
		return 0, ErrInvalidK
	}
	work := slices.Clone(a)
	target := len(work) - k // index in ascending order

	lo, hi := 0, len(work)-1
	for lo < hi {
		p := lomutoPartition(work, lo, hi)
		switch {
		case p == target:
			return work[p], nil
		case p < target:
			lo = p + 1
		default:
			hi = p - 1
		}
	}

	return work[lo], nil
}

// lomutoPartition partitions a[lo..hi] around the middle element and
// returns its final index.
func lomutoPartition(a []int, lo, hi int) int {
	mid := lo + (hi-lo)/2
	a[mid], a[hi] = a[hi], a[mid]
	pivot := a[hi]
	store := lo
	for i := lo; i < hi; i++ {
		if a[i] < pivot {
			a[i], a[store] = a[store], a[i]
			store++
		}
	}
	a[store], a[hi] = a[hi], a[store]

	return store
}

// SortColors sorts a slice of 0s, 1s and 2s in one pass (Dutch national
// flag). Invariant: a[:lo] == 0, a[lo:mid] == 1, a[hi+1:] == 2.
func SortColors(a []int) {
	lo, mid, hi := 0, 0, len(a)-1
	for mid <= hi {
		switch a[mid] {
		case 0:
			a[lo], a[mid] = a[mid], a[lo]
			lo++
			mid++
		case 1:
			mid++
		default:
			a[mid], a[hi] = a[hi], a[mid]
			hi--
		}
	}
}

// MergeIntervals merges overlapping closed intervals [start, end]. Intervals
// that touch ([1,4] and [4,5]) are merged. The result is ordered by start;
// the input is not modified.
func MergeIntervals(iv [][2]int) [][2]int {
	if len(iv) == 0 {
		return nil
	}
	sorted := slices.Clone(iv)
	slices.SortFunc(sorted, func(x, y [2]int) int { return cmp.Compare(x[0], y[0]) })

	out := [][2]int{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &out[len(out)-1]
		if cur[0] <= last[1] {
			last[1] = max(last[1], cur[1])
		} else {
			out = append(out, cur)
		}
	}

	return out
}

// CountInversions returns the number of pairs i < j with a[i] > a[j],
// counted during a merge sort of a copy of a. O(n log n).
func CountInversions(a []int) int {
	work := slices.Clone(a)

	return countInv(work, make([]int, len(work)))
}

func countInv(a, buf []int) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countInv(a[:mid], buf[:mid]) + countInv(a[mid:], buf[mid:])

	copy(buf, a)
	left, right := buf[:mid], buf[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			n += len(left) - i // right[j] is smaller than every remaining left element
			a[k] = right[j]
			j++
		} else {
			a[k] = left[i]
			i++
		}
		k++
	}
	k += copy(a[k:], left[i:])
	copy(a[k:], right[j:])

	return n
}
