// Package bsearch collects the classic binary search exercises over sorted
// slices: plain lookup, lower/upper bounds, first-and-last position, search
// in a rotated array, peak finding, integer square root, row-major matrix
// search and the median of two sorted arrays.
//
// What
//
//   - Search / SearchRecursive: index of target in a sorted slice, or -1.
//   - LowerBound / UpperBound:  first index with a[i] >= t / a[i] > t.
//   - SearchRange:              first and last index of t, {-1,-1} if absent.
//   - SearchInsert:             index where t is or would be inserted.
//   - SearchRotated:            lookup in a rotated sorted slice (distinct values).
//   - FindMinRotated, FindPeak: structural searches over unsorted-but-shaped input.
//   - Sqrt:                     floor of the square root of a non-negative int.
//   - SearchMatrix:             lookup in a matrix sorted in row-major order.
//   - MedianOfTwoSorted:        partition search over the shorter slice.
//   - SearchFunc:               smallest index satisfying a monotone predicate.
//
// Complexity
//
//   - Every operation runs in O(log n) time and O(1) memory, except
//     SearchRecursive (O(log n) stack) and MedianOfTwoSorted
//     (O(log(min(n, m))) time).
//
// Errors
//
//   - ErrEmptyInput    if a structural search receives no elements.
//   - ErrNegativeInput if Sqrt is asked for a negative number.
package bsearch
