package strmatch

// LengthOfLongestSubstring returns the length of the longest substring of s
// without repeated bytes.
func LengthOfLongestSubstring(s string) int {
	var last [256]int // 1 + last offset of each byte, 0 when unseen
	best, lo := 0, 0
	for hi := 0; hi < len(s); hi++ {
		c := s[hi]
		if last[c] > lo {
			lo = last[c]
		}
		last[c] = hi + 1
		best = max(best, hi-lo+1)
	}

	return best
}

// MinWindow returns the shortest substring of s containing every byte of t
// with multiplicity, the leftmost one on ties, or "" if none exists or t is
// empty.
func MinWindow(s, t string) string {
	if t == "" || len(t) > len(s) {
		return ""
	}
	var need [256]int
	for i := 0; i < len(t); i++ {
		need[t[i]]++
	}
	missing := len(t)
	start, best := 0, len(s)+1
	lo := 0
	for hi := 0; hi < len(s); hi++ {
		if need[s[hi]] > 0 {
			missing--
		}
		need[s[hi]]--
		for missing == 0 {
			if hi-lo+1 < best {
				start, best = lo, hi-lo+1
			}
			need[s[lo]]++
			if need[s[lo]] > 0 {
				missing++
			}
			lo++
		}
	}
	if best > len(s) {
		return ""
	}

	return s[start : start+best]
}

// FindAnagrams returns the start offsets of every substring of s that is a
// permutation of p, in increasing order.
func FindAnagrams(s, p string) []int {
	var out []int
	m := len(p)
	if m == 0 || m > len(s) {
		return out
	}
	var diff [256]int // count in window minus count in p
	for i := 0; i < m; i++ {
		diff[p[i]]--
		diff[s[i]]++
	}
	nonzero := 0
	for _, d := range diff {
		if d != 0 {
			nonzero++
		}
	}
	bump := func(c byte, delta int) {
		if diff[c] == 0 {
			nonzero++
		}
		diff[c] += delta
		if diff[c] == 0 {
			nonzero--
		}
	}
	for i := 0; ; i++ {
		if nonzero == 0 {
			out = append(out, i)
		}
		if i+m >= len(s) {
			return out
		}
		bump(s[i], -1)
		bump(s[i+m], +1)
	}
}

// CheckInclusion reports whether some permutation of p is a substring of s.
func CheckInclusion(p, s string) bool {
	if p == "" {
		return true
	}

	return len(FindAnagrams(s, p)) > 0
}
