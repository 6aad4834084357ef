package sorting

import "cmp"

// insertionCutoff is the slice length below which Quick finishes with
// insertion sort.
const insertionCutoff = 12

// Bubble sorts a in place by repeatedly swapping adjacent inversions.
// A pass without swaps ends the loop, so sorted input costs O(n).
func Bubble[T cmp.Ordered](a []T) {
	for end := len(a) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if a[i+1] < a[i] {
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts a in place, growing a sorted prefix one element at a time.
func Insertion[T cmp.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i - 1
		for j >= 0 && x < a[j] { // strict: equal keys keep their order
			a[j+1] = a[j]
			j--
		}
		a[j+1] = x
	}
}

// Selection sorts a in place by selecting the minimum of the unsorted suffix.
func Selection[T cmp.Ordered](a []T) {
	for i := 0; i < len(a)-1; i++ {
		m := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[m] {
				m = j
			}
		}
		if m != i {
			a[i], a[m] = a[m], a[i]
		}
	}
}

// Shell sorts a in place with gapped insertion passes over the Knuth
// sequence h = 3h + 1.
func Shell[T cmp.Ordered](a []T) {
	h := 1
	for h < len(a)/3 {
		h = 3*h + 1
	}
	for ; h >= 1; h /= 3 {
		for i := h; i < len(a); i++ {
			x := a[i]
			j := i
			for j >= h && x < a[j-h] {
				a[j] = a[j-h]
				j -= h
			}
			a[j] = x
		}
	}
}

// Merge sorts a in place using top-down merge sort with one scratch buffer
// of len(a). The sort is stable.
func Merge[T cmp.Ordered](a []T) {
	if len(a) < 2 {
		return
	}
	buf := make([]T, len(a))
	mergeSort(a, buf)
}

// mergeSort sorts a using buf (same length) as scratch space.
func mergeSort[T cmp.Ordered](a, buf []T) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], buf[:mid])
	mergeSort(a[mid:], buf[mid:])
	if !(a[mid] < a[mid-1]) {
		return // halves already in order
	}
	copy(buf, a)
	merge(a, buf[:mid], buf[mid:])
}

// merge writes the ordered union of the sorted runs left and right into dst.
// On ties the element from left wins, which keeps the sort stable.
func merge[T cmp.Ordered](dst, left, right []T) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// Quick sorts a in place with Hoare partitioning around a median-of-three
// pivot. It recurses into the smaller side and loops on the larger one, so
// stack depth stays O(log n). Short ranges fall back to Insertion.
func Quick[T cmp.Ordered](a []T) {
	for len(a) > insertionCutoff {
		p := hoarePartition(a)
		left, right := a[:p+1], a[p+1:]
		if len(left) < len(right) {
			Quick(left)
			a = right
		} else {
			Quick(right)
			a = left
		}
	}
	Insertion(a)
}

// hoarePartition rearranges a so that a[:j+1] <= pivot <= a[j+1:] and
// returns j. The pivot is the median of the first, middle and last
// elements; j always lies in [0, len(a)-2].
func hoarePartition[T cmp.Ordered](a []T) int {
	lo, mid, hi := 0, (len(a)-1)/2, len(a)-1
	if a[mid] < a[lo] {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if a[hi] < a[lo] {
		a[hi], a[lo] = a[lo], a[hi]
	}
	if a[hi] < a[mid] {
		a[hi], a[mid] = a[mid], a[hi]
	}
	pivot := a[mid]

	i, j := lo-1, hi+1
	for {
		for {
			i++
			if !(a[i] < pivot) {
				break
			}
		}
		for {
			j--
			if !(pivot < a[j]) {
				break
			}
		}
		if i >= j {
			return j
		}
		a[i], a[j] = a[j], a[i]
	}
}

// Heap sorts a in place: build a max-heap bottom-up, then repeatedly move
// the maximum behind the shrinking heap.
func Heap[T cmp.Ordered](a []T) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i
// within a[:n].
func siftDown[T cmp.Ordered](a []T, i, n int) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && a[largest] < a[l] {
			largest = l
		}
		if r < n && a[largest] < a[r] {
			largest = r
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted[T cmp.Ordered](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}

	return true
}
