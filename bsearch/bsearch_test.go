package bsearch_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkata/bsearch"
	"github.com/katalvlaran/lvlkata/internal/casefile"
)

// TestSearch_AgainstLinearScan compares both Search flavours with a linear scan
// for every value in and around a sorted slice.
func TestSearch_AgainstLinearScan(t *testing.T) {
	a := []int{1, 3, 4, 6, 8, 9, 15, 21}
	for target := 0; target <= 22; target++ {
		want := bsearch.NotFound
		for i, v := range a {
			if v == target {
				want = i
			}
		}
		assert.Equal(t, want, bsearch.Search(a, target), "Search(%d)", target)
		assert.Equal(t, want, bsearch.SearchRecursive(a, target), "SearchRecursive(%d)", target)
	}
}

func TestSearch_EmptyAndStrings(t *testing.T) {
	assert.Equal(t, bsearch.NotFound, bsearch.Search([]int{}, 1))
	assert.Equal(t, bsearch.NotFound, bsearch.SearchRecursive[int](nil, 1))

	words := []string{"ant", "bee", "cat", "dog"}
	assert.Equal(t, 2, bsearch.Search(words, "cat"))
	assert.Equal(t, bsearch.NotFound, bsearch.Search(words, "cow"))
}

func TestBounds(t *testing.T) {
	a := []int{1, 2, 2, 2, 5, 7}
	cases := []struct {
		target, lower, upper int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 4},
		{3, 4, 4},
		{7, 5, 6},
		{8, 6, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.lower, bsearch.LowerBound(a, tc.target), "LowerBound(%d)", tc.target)
		assert.Equal(t, tc.upper, bsearch.UpperBound(a, tc.target), "UpperBound(%d)", tc.target)
		// agree with the standard library
		assert.Equal(t, sort.SearchInts(a, tc.target), bsearch.LowerBound(a, tc.target))
	}
}

func TestSearchRange(t *testing.T) {
	cases := []struct {
		name   string
		a      []int
		target int
		want   [2]int
	}{
		{"Middle", []int{5, 7, 7, 8, 8, 10}, 8, [2]int{3, 4}},
		{"Absent", []int{5, 7, 7, 8, 8, 10}, 6, [2]int{-1, -1}},
		{"Empty", []int{}, 0, [2]int{-1, -1}},
		{"Single", []int{1}, 1, [2]int{0, 0}},
		{"AllSame", []int{2, 2, 2}, 2, [2]int{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bsearch.SearchRange(tc.a, tc.target))
		})
	}
}

func TestSearchInsert(t *testing.T) {
	a := []int{1, 3, 5, 6}
	assert.Equal(t, 2, bsearch.SearchInsert(a, 5))
	assert.Equal(t, 1, bsearch.SearchInsert(a, 2))
	assert.Equal(t, 4, bsearch.SearchInsert(a, 7))
	assert.Equal(t, 0, bsearch.SearchInsert(a, 0))
}

func TestSearchFunc(t *testing.T) {
	// first square >= 50
	assert.Equal(t, 8, bsearch.SearchFunc(100, func(i int) bool { return i*i >= 50 }))
	assert.Equal(t, 10, bsearch.SearchFunc(10, func(int) bool { return false }))
	assert.Equal(t, 0, bsearch.SearchFunc(10, func(int) bool { return true }))
}

func TestSearchRotated(t *testing.T) {
	a := []int{4, 5, 6, 7, 0, 1, 2}
	for i, v := range a {
		assert.Equal(t, i, bsearch.SearchRotated(a, v), "target %d", v)
	}
	assert.Equal(t, bsearch.NotFound, bsearch.SearchRotated(a, 3))
	assert.Equal(t, bsearch.NotFound, bsearch.SearchRotated([]int{1}, 0))
	assert.Equal(t, bsearch.NotFound, bsearch.SearchRotated(nil, 0))
	assert.Equal(t, 1, bsearch.SearchRotated([]int{3, 1}, 1))
}

func TestFindMinRotated(t *testing.T) {
	cases := [][]int{
		{3, 4, 5, 1, 2},
		{4, 5, 6, 7, 0, 1, 2},
		{11, 13, 15, 17},
		{2, 2, 2, 0, 1},
		{1},
	}
	wants := []int{1, 0, 11, 0, 1}
	for i, a := range cases {
		got, err := bsearch.FindMinRotated(a)
		require.NoError(t, err)
		assert.Equal(t, wants[i], got, "%v", a)
	}
	_, err := bsearch.FindMinRotated(nil)
	assert.ErrorIs(t, err, bsearch.ErrEmptyInput)
}

func TestFindPeak(t *testing.T) {
	isPeak := func(a []int, i int) bool {
		left := i == 0 || a[i-1] < a[i]
		right := i == len(a)-1 || a[i+1] < a[i]

		return left && right
	}
	for _, a := range [][]int{{1, 2, 3, 1}, {1, 2, 1, 3, 5, 6, 4}, {1}, {3, 2, 1}, {1, 2, 3}} {
		i, err := bsearch.FindPeak(a)
		require.NoError(t, err)
		assert.True(t, isPeak(a, i), "index %d in %v is not a peak", i, a)
	}
	_, err := bsearch.FindPeak([]int{})
	assert.ErrorIs(t, err, bsearch.ErrEmptyInput)
}

func TestSqrt(t *testing.T) {
	for x := 0; x <= 1000; x++ {
		r, err := bsearch.Sqrt(x)
		require.NoError(t, err)
		assert.True(t, r*r <= x && (r+1)*(r+1) > x, "Sqrt(%d)=%d", x, r)
	}
	r, err := bsearch.Sqrt(2147395599)
	require.NoError(t, err)
	assert.Equal(t, 46339, r)

	_, err = bsearch.Sqrt(-1)
	assert.ErrorIs(t, err, bsearch.ErrNegativeInput)
}

func TestSearchMatrix(t *testing.T) {
	m := [][]int{
		{1, 3, 5, 7},
		{10, 11, 16, 20},
		{23, 30, 34, 60},
	}
	assert.True(t, bsearch.SearchMatrix(m, 3))
	assert.True(t, bsearch.SearchMatrix(m, 60))
	assert.False(t, bsearch.SearchMatrix(m, 13))
	assert.False(t, bsearch.SearchMatrix(nil, 1))
	assert.False(t, bsearch.SearchMatrix([][]int{{}}, 1))
}

// TestMedianOfTwoSorted_Fixtures runs the cases in testdata/median.yaml.
func TestMedianOfTwoSorted_Fixtures(t *testing.T) {
	f, err := casefile.LoadFile("testdata/median.yaml")
	require.NoError(t, err)

	for _, c := range f.Cases {
		t.Run(c.Name, func(t *testing.T) {
			got, err := bsearch.MedianOfTwoSorted(c.Nums, c.Nums2)
			if c.WantErr {
				assert.ErrorIs(t, err, bsearch.ErrEmptyInput)

				return
			}
			require.NoError(t, err)
			var want float64
			require.NoError(t, c.DecodeWant(&want))
			assert.InDelta(t, want, got, 1e-9)
		})
	}
}

// TestMedianOfTwoSorted_MergeOracle checks the partition search against a
// merge of both inputs for many small shapes.
func TestMedianOfTwoSorted_MergeOracle(t *testing.T) {
	for n := 0; n <= 6; n++ {
		for m := 0; m <= 6; m++ {
			if n+m == 0 {
				continue
			}
			a := make([]int, n)
			b := make([]int, m)
			for i := range a {
				a[i] = i * 3
			}
			for j := range b {
				b[j] = j*2 + 1
			}
			merged := append(append([]int{}, a...), b...)
			sort.Ints(merged)
			var want float64
			if len(merged)%2 == 1 {
				want = float64(merged[len(merged)/2])
			} else {
				want = float64(merged[len(merged)/2-1]+merged[len(merged)/2]) / 2
			}

			got, err := bsearch.MedianOfTwoSorted(a, b)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9, "a=%v b=%v", a, b)
		}
	}
}
