// Package sorting implements the textbook sorting algorithms over any
// cmp.Ordered element type, plus a few exercises that are solved by sorting
// or by a sorting sub-routine.
//
// What
//
//   - Comparison sorts, all in place: Bubble, Insertion, Selection, Shell,
//     Merge, Quick, Heap.
//   - Distribution sorts over ints: Counting (negatives allowed) and
//     Radix (LSD, non-negative only).
//   - Sort(a, opts...): dispatch by WithAlgorithm, optional WithDescending.
//   - KthLargest:      quickselect on a copy of the input.
//   - SortColors:      Dutch national flag partition of 0/1/2 values.
//   - MergeIntervals:  sort by start and merge overlapping ranges.
//   - CountInversions: merge-sort based inversion count.
//
// Stability
//
//	Bubble, Insertion, Merge, Counting and Radix keep equal elements in their
//	original relative order. Selection, Shell, Quick and Heap do not.
//
// Complexity
//
//	| Algorithm | Best       | Average    | Worst      | Extra memory |
//	|-----------|------------|------------|------------|--------------|
//	| Bubble    | O(n)       | O(n²)      | O(n²)      | O(1)         |
//	| Insertion | O(n)       | O(n²)      | O(n²)      | O(1)         |
//	| Selection | O(n²)      | O(n²)      | O(n²)      | O(1)         |
//	| Shell     | O(n log n) | ~O(n^1.3)  | O(n²)      | O(1)         |
//	| Merge     | O(n log n) | O(n log n) | O(n log n) | O(n)         |
//	| Quick     | O(n log n) | O(n log n) | O(n²)      | O(log n)     |
//	| Heap      | O(n log n) | O(n log n) | O(n log n) | O(1)         |
//	| Counting  | O(n + k)   | O(n + k)   | O(n + k)   | O(n + k)     |
//	| Radix     | O(d·n)     | O(d·n)     | O(d·n)     | O(n)         |
//
// Errors
//
//   - ErrOptionViolation  for an out-of-range WithAlgorithm value.
//   - ErrUnknownAlgorithm from ParseAlgorithm.
//   - ErrNegativeInput    from Radix.
//   - ErrInvalidK         from KthLargest.
package sorting
