package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkata/sorting"
)

// ExampleSort sorts with a chosen algorithm in descending order.
func ExampleSort() {
	a := []int{5, 2, 9, 1, 5, 6}
	if err := sorting.Sort(a, sorting.WithAlgorithm(sorting.MergeSort), sorting.WithDescending()); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(a)
	// Output: [9 6 5 5 2 1]
}

// ExampleKthLargest selects without fully sorting.
func ExampleKthLargest() {
	v, _ := sorting.KthLargest([]int{3, 2, 1, 5, 6, 4}, 2)
	fmt.Println(v)
	// Output: 5
}

// ExampleMergeIntervals merges overlapping ranges.
func ExampleMergeIntervals() {
	fmt.Println(sorting.MergeIntervals([][2]int{{1, 3}, {2, 6}, {8, 10}, {15, 18}}))
	// Output: [[1 6] [8 10] [15 18]]
}
