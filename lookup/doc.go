// Package lookup gathers the hashmap exercises: problems where a map from
// value (or derived key) to index/count turns a quadratic search into a
// single pass.
//
// What
//
//   - TwoSum:                  complement map, one pass.
//   - TwoSumSorted:            two pointers over sorted input.
//   - ThreeSum:                sort + two pointers, duplicates skipped.
//   - FourSumCount:            pair-sum map over four slices.
//   - SubarraySum:             prefix-sum frequency map.
//   - ContainsDuplicate,
//     ContainsNearbyDuplicate: set / last-seen index map.
//   - LongestConsecutive:      set with run starts only.
//   - GroupAnagrams, IsAnagram, FirstUniqueChar: letter-count keys.
//   - WordPattern:             two maps enforcing a bijection.
//   - TopKFrequent:            frequency map + bucket by count.
//
// Errors
//
//   - ErrNoSolution if TwoSum / TwoSumSorted find no pair.
//   - ErrInvalidK   if TopKFrequent is asked for k outside [1, distinct].
package lookup
