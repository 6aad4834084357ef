package strmatch_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlkata/strmatch"
)

//---// Substring search //---//

func TestPrefixFunction(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 2, 0, 1, 2, 3, 4}, strmatch.PrefixFunction("ababcabab"))
	assert.Equal(t, []int{0, 1, 0, 1, 2, 2, 3}, strmatch.PrefixFunction("aabaaab"))
	assert.Empty(t, strmatch.PrefixFunction(""))
}

func TestIndexers(t *testing.T) {
	indexers := map[string]func(string, string) int{
		"KMP":       strmatch.Index,
		"Naive":     strmatch.NaiveIndex,
		"RabinKarp": strmatch.RabinKarp,
	}
	tests := []struct {
		text, pattern string
		want          int
	}{
		{"hello", "ll", 2},
		{"aaaaa", "bba", -1},
		{"sadbutsad", "sad", 0},
		{"leetcode", "leeto", -1},
		{"abc", "", 0},
		{"", "", 0},
		{"", "a", -1},
		{"ab", "abc", -1},
		{"mississippi", "issip", 4},
		{"aabaaabaaac", "aabaaac", 4},
	}
	for name, fn := range indexers {
		t.Run(name, func(t *testing.T) {
			for _, tc := range tests {
				assert.Equal(t, tc.want, fn(tc.text, tc.pattern), "%q in %q", tc.pattern, tc.text)
			}
		})
	}
}

// TestIndexers_AgreeWithStrings cross-checks every indexer against
// strings.Index on random texts over a two-letter alphabet.
func TestIndexers_AgreeWithStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	word := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ab"[rng.Intn(2)]
		}

		return string(b)
	}
	for i := 0; i < 300; i++ {
		text, pattern := word(rng.Intn(40)), word(1+rng.Intn(5))
		want := strings.Index(text, pattern)
		assert.Equal(t, want, strmatch.Index(text, pattern))
		assert.Equal(t, want, strmatch.NaiveIndex(text, pattern))
		assert.Equal(t, want, strmatch.RabinKarp(text, pattern))
	}
}

func TestIndexAll(t *testing.T) {
	assert.Equal(t, []int{0, 1}, strmatch.IndexAll("aaa", "aa"))
	assert.Equal(t, []int{0, 2, 4}, strmatch.IndexAll("abababa", "aba"))
	assert.Empty(t, strmatch.IndexAll("abc", "d"))
	assert.Equal(t, []int{0, 1, 2}, strmatch.IndexAll("ab", ""))
}

//---// Prefix-function corollaries //---//

func TestZFunction(t *testing.T) {
	assert.Equal(t, []int{7, 1, 0, 0, 3, 1, 0}, strmatch.ZFunction("aabxaab"))
	assert.Equal(t, []int{3, 2, 1}, strmatch.ZFunction("aaa"))
	assert.Empty(t, strmatch.ZFunction(""))
}

func TestRepeatedSubstringPattern(t *testing.T) {
	assert.True(t, strmatch.RepeatedSubstringPattern("abab"))
	assert.True(t, strmatch.RepeatedSubstringPattern("abcabcabcabc"))
	assert.True(t, strmatch.RepeatedSubstringPattern("zz"))
	assert.False(t, strmatch.RepeatedSubstringPattern("aba"))
	assert.False(t, strmatch.RepeatedSubstringPattern("abac"))
	assert.False(t, strmatch.RepeatedSubstringPattern("a"))
	assert.False(t, strmatch.RepeatedSubstringPattern(""))
}

func TestShortestPalindrome(t *testing.T) {
	assert.Equal(t, "aaacecaaa", strmatch.ShortestPalindrome("aacecaaa"))
	assert.Equal(t, "dcbabcd", strmatch.ShortestPalindrome("abcd"))
	assert.Equal(t, "aba", strmatch.ShortestPalindrome("aba"))
	assert.Equal(t, "", strmatch.ShortestPalindrome(""))
}

//---// Rotation and palindromes //---//

func TestMinimalRotation(t *testing.T) {
	tests := []struct {
		in, want string
		index    int
	}{
		{"bca", "abc", 2},
		{"bbaaccaadd", "aaccaaddbb", 2},
		{"aaaa", "aaaa", 0},
		{"abab", "abab", 0},
		{"cabbage", "abbagec", 1},
		{"", "", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, strmatch.MinimalRotation(tc.in), tc.in)
		assert.Equal(t, tc.index, strmatch.MinimalRotationIndex(tc.in), tc.in)
	}
}

// TestMinimalRotation_BruteForce compares Booth's algorithm with the
// minimum over all rotations.
func TestMinimalRotation_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		b := make([]byte, 1+rng.Intn(12))
		for j := range b {
			b[j] = "abc"[rng.Intn(3)]
		}
		s := string(b)
		want := s
		for k := 1; k < len(s); k++ {
			if r := s[k:] + s[:k]; r < want {
				want = r
			}
		}
		assert.Equal(t, want, strmatch.MinimalRotation(s), s)
	}
}

func TestLongestPalindrome(t *testing.T) {
	assert.Equal(t, "bab", strmatch.LongestPalindrome("babad"))
	assert.Equal(t, "bb", strmatch.LongestPalindrome("cbbd"))
	assert.Equal(t, "a", strmatch.LongestPalindrome("a"))
	assert.Equal(t, "racecar", strmatch.LongestPalindrome("xracecary"))
	assert.Equal(t, "", strmatch.LongestPalindrome(""))
}

//---// Sliding window //---//

func TestLengthOfLongestSubstring(t *testing.T) {
	cases := map[string]int{
		"abcabcbb": 3,
		"bbbbb":    1,
		"pwwkew":   3,
		"abba":     2,
		"":         0,
		" ":        1,
	}
	for in, want := range cases {
		assert.Equal(t, want, strmatch.LengthOfLongestSubstring(in), in)
	}
}

func TestMinWindow(t *testing.T) {
	assert.Equal(t, "BANC", strmatch.MinWindow("ADOBECODEBANC", "ABC"))
	assert.Equal(t, "a", strmatch.MinWindow("a", "a"))
	assert.Equal(t, "", strmatch.MinWindow("a", "aa"))
	assert.Equal(t, "", strmatch.MinWindow("abc", ""))
	assert.Equal(t, "", strmatch.MinWindow("abc", "d"))
	assert.Equal(t, "aa", strmatch.MinWindow("baab", "aa"))
}

func TestFindAnagrams(t *testing.T) {
	assert.Equal(t, []int{0, 6}, strmatch.FindAnagrams("cbaebabacd", "abc"))
	assert.Equal(t, []int{0, 1, 2}, strmatch.FindAnagrams("abab", "ab"))
	assert.Empty(t, strmatch.FindAnagrams("a", "ab"))
	assert.Empty(t, strmatch.FindAnagrams("abc", ""))
}

func TestCheckInclusion(t *testing.T) {
	assert.True(t, strmatch.CheckInclusion("ab", "eidbaooo"))
	assert.False(t, strmatch.CheckInclusion("ab", "eidboaoo"))
	assert.True(t, strmatch.CheckInclusion("", "x"))
	assert.False(t, strmatch.CheckInclusion("abc", "ab"))
}
