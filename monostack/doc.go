// Package monostack implements the monotonic stack and monotonic deque
// exercises.
//
// A monotonic stack keeps indices whose values are strictly increasing (or
// decreasing) from bottom to top. When a new element breaks the order, the
// popped indices have just met their "next smaller/greater" element, which
// is exactly the quantity these problems ask for. Every index is pushed and
// popped at most once, so each routine runs in O(n) time and O(n) space.
//
// What
//
//   - NextGreater, NextGreaterCircular, PrevSmaller, DailyTemperatures:
//     the raw next/previous element queries.
//   - LargestRectangle, MaximalRectangle: histogram areas.
//   - Trap: water held between bars.
//   - SumSubarrayMins: contribution counting with left/right extents,
//     reported modulo 1e9+7.
//   - RemoveKDigits: greedy smallest number by dropping k digits.
//   - StockSpanner: online span of consecutive days with price ≤ today.
//   - MaxSlidingWindow: monotonic deque.
//
// Conventions
//
//   - "No such element" is -1 for value queries and 0 for distance queries
//     (DailyTemperatures), matching the usual exercise statements.
//   - Inputs are never modified.
//
// Errors
//
//   - ErrInvalidWindow if MaxSlidingWindow gets k outside [1, len(a)].
package monostack
