package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkata/internal/casefile"
	"github.com/katalvlaran/lvlkata/lookup"
)

// TestTwoSum_Fixtures runs testdata/two_sum.yaml through TwoSum.
func TestTwoSum_Fixtures(t *testing.T) {
	f, err := casefile.LoadFile("testdata/two_sum.yaml")
	require.NoError(t, err)

	for _, c := range f.Cases {
		t.Run(c.Name, func(t *testing.T) {
			got, err := lookup.TwoSum(c.Nums, c.Target)
			if c.WantErr {
				assert.ErrorIs(t, err, lookup.ErrNoSolution)

				return
			}
			require.NoError(t, err)
			var want [2]int
			require.NoError(t, c.DecodeWant(&want))
			assert.Equal(t, want, got)
		})
	}
}

func TestTwoSumSorted(t *testing.T) {
	got, err := lookup.TwoSumSorted([]int{2, 7, 11, 15}, 9)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, got)

	got, err = lookup.TwoSumSorted([]int{-1, 0}, -1)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, got)

	_, err = lookup.TwoSumSorted([]int{1, 2, 3}, 100)
	assert.ErrorIs(t, err, lookup.ErrNoSolution)
	_, err = lookup.TwoSumSorted([]int{5}, 10)
	assert.ErrorIs(t, err, lookup.ErrNoSolution)
}

func TestThreeSum(t *testing.T) {
	in := []int{-1, 0, 1, 2, -1, -4}
	assert.Equal(t, [][3]int{{-1, -1, 2}, {-1, 0, 1}}, lookup.ThreeSum(in))
	assert.Equal(t, []int{-1, 0, 1, 2, -1, -4}, in, "input must not be sorted in place")

	assert.Equal(t, [][3]int{{0, 0, 0}}, lookup.ThreeSum([]int{0, 0, 0, 0}))
	assert.Empty(t, lookup.ThreeSum([]int{0, 1, 1}))
	assert.Empty(t, lookup.ThreeSum(nil))
	assert.Equal(t, [][3]int{{-2, 0, 2}, {-2, 1, 1}}, lookup.ThreeSum([]int{-2, 0, 1, 1, 2}))
}

func TestFourSumCount(t *testing.T) {
	assert.Equal(t, 2, lookup.FourSumCount([]int{1, 2}, []int{-2, -1}, []int{-1, 2}, []int{0, 2}))
	assert.Equal(t, 1, lookup.FourSumCount([]int{0}, []int{0}, []int{0}, []int{0}))
	assert.Equal(t, 0, lookup.FourSumCount(nil, []int{0}, []int{0}, []int{0}))
}

func TestSubarraySum(t *testing.T) {
	assert.Equal(t, 2, lookup.SubarraySum([]int{1, 1, 1}, 2))
	assert.Equal(t, 2, lookup.SubarraySum([]int{1, 2, 3}, 3))
	assert.Equal(t, 4, lookup.SubarraySum([]int{1, -1, 1, -1}, 0))
	assert.Equal(t, 0, lookup.SubarraySum(nil, 0))
}

func TestContainsDuplicate(t *testing.T) {
	assert.True(t, lookup.ContainsDuplicate([]int{1, 2, 3, 1}))
	assert.False(t, lookup.ContainsDuplicate([]int{1, 2, 3, 4}))

	assert.True(t, lookup.ContainsNearbyDuplicate([]int{1, 2, 3, 1}, 3))
	assert.True(t, lookup.ContainsNearbyDuplicate([]int{1, 0, 1, 1}, 1))
	assert.False(t, lookup.ContainsNearbyDuplicate([]int{1, 2, 3, 1, 2, 3}, 2))
}

func TestLongestConsecutive(t *testing.T) {
	assert.Equal(t, 4, lookup.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}))
	assert.Equal(t, 9, lookup.LongestConsecutive([]int{0, 3, 7, 2, 5, 8, 4, 6, 0, 1}))
	assert.Equal(t, 0, lookup.LongestConsecutive(nil))
	assert.Equal(t, 3, lookup.LongestConsecutive([]int{-1, -2, -3, 10}))
}

func TestTopKFrequent(t *testing.T) {
	got, err := lookup.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	// ties broken by smaller value
	got, err = lookup.TopKFrequent([]int{4, 4, 3, 3, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	got, err = lookup.TopKFrequent([]int{7}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)

	_, err = lookup.TopKFrequent([]int{1, 2}, 3)
	assert.ErrorIs(t, err, lookup.ErrInvalidK)
	_, err = lookup.TopKFrequent(nil, 1)
	assert.ErrorIs(t, err, lookup.ErrInvalidK)
}

func TestGroupAnagrams(t *testing.T) {
	got := lookup.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	assert.Equal(t, [][]string{{"eat", "tea", "ate"}, {"tan", "nat"}, {"bat"}}, got)
	assert.Equal(t, [][]string{{""}}, lookup.GroupAnagrams([]string{""}))
	assert.Empty(t, lookup.GroupAnagrams(nil))
}

func TestIsAnagram(t *testing.T) {
	assert.True(t, lookup.IsAnagram("anagram", "nagaram"))
	assert.False(t, lookup.IsAnagram("rat", "car"))
	assert.False(t, lookup.IsAnagram("ab", "a"))
	assert.True(t, lookup.IsAnagram("", ""))
	assert.True(t, lookup.IsAnagram("żółw", "wółż"))
}

func TestFirstUniqueChar(t *testing.T) {
	assert.Equal(t, 0, lookup.FirstUniqueChar("leetcode"))
	assert.Equal(t, 2, lookup.FirstUniqueChar("loveleetcode"))
	assert.Equal(t, -1, lookup.FirstUniqueChar("aabb"))
	assert.Equal(t, -1, lookup.FirstUniqueChar(""))
}

func TestWordPattern(t *testing.T) {
	assert.True(t, lookup.WordPattern("abba", "dog cat cat dog"))
	assert.False(t, lookup.WordPattern("abba", "dog cat cat fish"))
	assert.False(t, lookup.WordPattern("aaaa", "dog cat cat dog"))
	assert.False(t, lookup.WordPattern("abba", "dog dog dog dog"))
	assert.False(t, lookup.WordPattern("ab", "dog"))
}
