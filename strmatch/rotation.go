package strmatch

// ZFunction returns z where z[i] is the length of the longest common prefix
// of s and s[i:]. By convention z[0] = len(s).
func ZFunction(s string) []int {
	n := len(s)
	z := make([]int, n)
	if n == 0 {
		return z
	}
	z[0] = n
	l, r := 0, 0 // rightmost window [l, r) known to match a prefix
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}

	return z
}

// MinimalRotationIndex returns the start offset of the lexicographically
// least rotation of s using Booth's algorithm: a failure function over the
// doubled string whose candidate start k moves forward whenever a smaller
// byte appears. Ties resolve to the smallest offset.
func MinimalRotationIndex(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	doubled := s + s
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		c := doubled[j]
		i := f[j-k-1]
		for i != -1 && c != doubled[k+i+1] {
			if c < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if c != doubled[k+i+1] { // i == -1 here
			if c < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return k % n
}

// MinimalRotation returns the lexicographically least rotation of s
// ("bca" → "abc").
func MinimalRotation(s string) string {
	k := MinimalRotationIndex(s)

	return s[k:] + s[:k]
}

// LongestPalindrome returns the longest palindromic substring of s,
// the leftmost one on ties.
func LongestPalindrome(s string) string {
	start, length := 0, 0
	expand := func(lo, hi int) {
		for lo >= 0 && hi < len(s) && s[lo] == s[hi] {
			lo--
			hi++
		}
		if hi-lo-1 > length {
			start, length = lo+1, hi-lo-1
		}
	}
	for c := 0; c < len(s); c++ {
		expand(c, c)   // odd length
		expand(c, c+1) // even length
	}

	return s[start : start+length]
}
