// Package strmatch covers substring search and the string exercises built
// on the same machinery: the KMP prefix function, the Z-function,
// Rabin–Karp rolling hashes, Booth's least rotation, palindromes and the
// sliding-window family.
//
// What
//
//   - PrefixFunction, Index, IndexAll: Knuth–Morris–Pratt, O(n+m).
//   - NaiveIndex:                      O(n·m) reference implementation.
//   - RabinKarp:                       rolling hash with verification on hit.
//   - ZFunction:                       longest common prefix with every suffix.
//   - RepeatedSubstringPattern,
//     ShortestPalindrome:              prefix-function corollaries.
//   - MinimalRotation(Index):          Booth's algorithm, O(n).
//   - LongestPalindrome:               expand around each centre, O(n²).
//   - LengthOfLongestSubstring, MinWindow, FindAnagrams, CheckInclusion:
//     two-pointer windows with byte counters.
//
// Conventions
//
//   - Strings are treated as byte sequences; offsets are byte offsets.
//   - An empty pattern matches at offset 0 (Index, NaiveIndex, RabinKarp)
//     and at every offset 0..len(text) (IndexAll), like strings.Index.
//   - No operation returns an error; "not found" is -1, "" or false.
package strmatch
