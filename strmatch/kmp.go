package strmatch

// PrefixFunction returns pi where pi[i] is the length of the longest proper
// prefix of p[:i+1] that is also its suffix (the KMP failure function).
func PrefixFunction(p string) []int {
	pi := make([]int, len(p))
	for i := 1; i < len(p); i++ {
		k := pi[i-1]
		for k > 0 && p[i] != p[k] {
			k = pi[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// scan feeds text through the KMP automaton of pattern and calls hit with
// the start offset of every match. hit returns false to stop early.
// The final automaton state (matched prefix length) is returned.
func scan(text, pattern string, pi []int, hit func(int) bool) int {
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = pi[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			if hit != nil && !hit(i-k+1) {
				return k
			}
			k = pi[k-1]
		}
	}

	return k
}

// Index returns the offset of the first occurrence of pattern in text, or -1.
func Index(text, pattern string) int {
	if pattern == "" {
		return 0
	}
	at := -1
	scan(text, pattern, PrefixFunction(pattern), func(i int) bool {
		at = i

		return false
	})

	return at
}

// IndexAll returns the offsets of every occurrence of pattern in text,
// overlapping ones included ("aa" in "aaa" → [0 1]).
func IndexAll(text, pattern string) []int {
	if pattern == "" {
		all := make([]int, len(text)+1)
		for i := range all {
			all[i] = i
		}

		return all
	}
	var out []int
	scan(text, pattern, PrefixFunction(pattern), func(i int) bool {
		out = append(out, i)

		return true
	})

	return out
}

// NaiveIndex compares pattern against every alignment of text.
func NaiveIndex(text, pattern string) int {
	n, m := len(text), len(pattern)
	for i := 0; i+m <= n; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			return i
		}
	}

	return -1
}

const (
	rkBase = 256
	rkMod  = 1_000_000_007
)

// RabinKarp finds the first occurrence of pattern in text with a
// polynomial rolling hash. Equal hashes are confirmed by direct comparison,
// so collisions never produce false matches.
func RabinKarp(text, pattern string) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}

	var hp, ht, high uint64 = 0, 0, 1 // high = base^(m-1) mod p
	for i := 0; i < m; i++ {
		hp = (hp*rkBase + uint64(pattern[i])) % rkMod
		ht = (ht*rkBase + uint64(text[i])) % rkMod
		if i > 0 {
			high = high * rkBase % rkMod
		}
	}
	for i := 0; ; i++ {
		if hp == ht && text[i:i+m] == pattern {
			return i
		}
		if i+m >= n {
			return -1
		}
		// drop text[i], append text[i+m]
		ht = (ht + rkMod - uint64(text[i])*high%rkMod) % rkMod
		ht = (ht*rkBase + uint64(text[i+m])) % rkMod
	}
}

// RepeatedSubstringPattern reports whether s is some shorter string
// repeated at least twice ("abab" → true, "aba" → false).
func RepeatedSubstringPattern(s string) bool {
	n := len(s)
	if n < 2 {
		return false
	}
	border := PrefixFunction(s)[n-1]

	return border > 0 && n%(n-border) == 0
}

// ShortestPalindrome returns the shortest palindrome obtained by adding
// characters in front of s. The longest palindromic prefix of s is found by
// running reverse(s) through the KMP automaton of s.
func ShortestPalindrome(s string) string {
	rev := reverse(s)
	if rev == s {
		return s
	}
	pal := scan(rev, s, PrefixFunction(s), nil)

	return rev[:len(s)-pal] + s
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
