package lookup

import (
	"slices"
	"strings"
)

// letterKey returns a canonical key shared by all anagrams of w: the runes
// of w in sorted order.
func letterKey(w string) string {
	r := []rune(w)
	slices.Sort(r)

	return string(r)
}

// GroupAnagrams partitions words into anagram classes. Words keep their
// input order inside a group and groups are ordered by their first word's
// position, so the output is deterministic.
func GroupAnagrams(words []string) [][]string {
	index := make(map[string]int)
	var groups [][]string
	for _, w := range words {
		key := letterKey(w)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], w)
	}

	return groups
}

// IsAnagram reports whether t is a permutation of the runes of s.
func IsAnagram(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	for _, r := range t {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}

	return true
}

// FirstUniqueChar returns the byte index of the first rune that occurs
// exactly once in s, or -1.
func FirstUniqueChar(s string) int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	for i, r := range s {
		if counts[r] == 1 {
			return i
		}
	}

	return -1
}

// WordPattern reports whether the space-separated words of s follow
// pattern with a bijection between pattern letters and words.
func WordPattern(pattern, s string) bool {
	words := strings.Fields(s)
	runes := []rune(pattern)
	if len(runes) != len(words) {
		return false
	}
	toWord := make(map[rune]string)
	toRune := make(map[string]rune)
	for i, r := range runes {
		w := words[i]
		if mw, ok := toWord[r]; ok && mw != w {
			return false
		}
		if mr, ok := toRune[w]; ok && mr != r {
			return false
		}
		toWord[r] = w
		toRune[w] = r
	}

	return true
}
