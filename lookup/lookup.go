package lookup

import (
	"cmp"
	"errors"
	"slices"
)

// Sentinel errors for lookup exercises.
var (
	// ErrNoSolution indicates that no pair satisfies the target.
	ErrNoSolution = errors.New("lookup: no solution")

	// ErrInvalidK indicates k outside the valid range.
	ErrInvalidK = errors.New("lookup: k out of range")
)

// TwoSum returns indices i < j with a[i]+a[j] == target. For each element
// it first asks whether its complement was already seen, then records
// itself, so an element is never paired with itself.
func TwoSum(a []int, target int) ([2]int, error) {
	seen := make(map[int]int, len(a))
	for j, v := range a {
		if i, ok := seen[target-v]; ok {
			return [2]int{i, j}, nil
		}
		seen[v] = j
	}

	return [2]int{}, ErrNoSolution
}

// TwoSumSorted returns indices i < j with a[i]+a[j] == target for an
// ascending slice, walking two pointers inwards. O(1) memory.
func TwoSumSorted(a []int, target int) ([2]int, error) {
	i, j := 0, len(a)-1
	for i < j {
		switch s := a[i] + a[j]; {
		case s == target:
			return [2]int{i, j}, nil
		case s < target:
			i++
		default:
			j--
		}
	}

	return [2]int{}, ErrNoSolution
}

// ThreeSum returns every distinct triplet of values summing to zero. Each
// triplet is ascending and the list is in lexicographic order. The input is
// not modified.
func ThreeSum(a []int) [][3]int {
	s := slices.Clone(a)
	slices.Sort(s)

	var out [][3]int
	for i := 0; i < len(s)-2; i++ {
		if s[i] > 0 {
			break
		}
		if i > 0 && s[i] == s[i-1] {
			continue
		}
		lo, hi := i+1, len(s)-1
		for lo < hi {
			sum := s[i] + s[lo] + s[hi]
			switch {
			case sum < 0:
				lo++
			case sum > 0:
				hi--
			default:
				out = append(out, [3]int{s[i], s[lo], s[hi]})
				for lo < hi && s[lo] == s[lo+1] {
					lo++
				}
				for lo < hi && s[hi] == s[hi-1] {
					hi--
				}
				lo++
				hi--
			}
		}
	}

	return out
}

// FourSumCount counts index tuples (i, j, k, l) with
// a[i]+b[j]+c[k]+d[l] == 0 by meeting in the middle. O(n²).
func FourSumCount(a, b, c, d []int) int {
	sums := make(map[int]int, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			sums[x+y]++
		}
	}
	n := 0
	for _, x := range c {
		for _, y := range d {
			n += sums[-x-y]
		}
	}

	return n
}

// SubarraySum counts contiguous non-empty subarrays summing to k. A running
// prefix sum p closes a matching subarray for every earlier prefix p-k.
func SubarraySum(a []int, k int) int {
	prefixes := map[int]int{0: 1}
	n, p := 0, 0
	for _, v := range a {
		p += v
		n += prefixes[p-k]
		prefixes[p]++
	}

	return n
}

// ContainsDuplicate reports whether any value occurs twice.
func ContainsDuplicate(a []int) bool {
	seen := make(map[int]struct{}, len(a))
	for _, v := range a {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}

// ContainsNearbyDuplicate reports whether a[i] == a[j] for some i != j
// with |i-j| <= k.
func ContainsNearbyDuplicate(a []int, k int) bool {
	last := make(map[int]int, len(a))
	for j, v := range a {
		if i, ok := last[v]; ok && j-i <= k {
			return true
		}
		last[v] = j
	}

	return false
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers present in a, in O(n): runs are only counted from their start
// (a value whose predecessor is absent).
func LongestConsecutive(a []int) int {
	set := make(map[int]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	best := 0
	for v := range set {
		if _, ok := set[v-1]; ok {
			continue
		}
		n := 1
		for {
			if _, ok := set[v+n]; !ok {
				break
			}
			n++
		}
		best = max(best, n)
	}

	return best
}

// TopKFrequent returns the k most frequent values, most frequent first;
// ties are broken by the smaller value. Counts are bucketed by frequency,
// so the selection is O(n) apart from sorting inside each bucket.
func TopKFrequent(a []int, k int) ([]int, error) {
	freq := make(map[int]int)
	for _, v := range a {
		freq[v]++
	}
	if k < 1 || k > len(freq) {
		return nil, ErrInvalidK
	}

	buckets := make([][]int, len(a)+1)
	for v, c := range freq {
		buckets[c] = append(buckets[c], v)
	}
	out := make([]int, 0, k)
	for c := len(buckets) - 1; c > 0 && len(out) < k; c-- {
		b := buckets[c]
		slices.SortFunc(b, cmp.Compare[int])
		out = append(out, b[:min(len(b), k-len(out))]...)
	}

	return out, nil
}
