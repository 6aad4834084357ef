package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlkata/expr"
	"github.com/katalvlaran/lvlkata/grid"
	"github.com/katalvlaran/lvlkata/lookup"
	"github.com/katalvlaran/lvlkata/monostack"
	"github.com/katalvlaran/lvlkata/strmatch"
)

func lookupProblems() []Problem {
	const family = "lookup"

	return []Problem{
		{Name: "two-sum", Family: family, Summary: "indices of two nums adding up to target",
			Run: func(c Case) (any, error) { return lookup.TwoSum(c.Nums, c.Target) }},
		{Name: "two-sum-sorted", Family: family, Summary: "two pointers over sorted nums",
			Run: func(c Case) (any, error) { return lookup.TwoSumSorted(c.Nums, c.Target) }},
		{Name: "three-sum", Family: family, Summary: "unique triples summing to zero",
			Run: func(c Case) (any, error) { return lookup.ThreeSum(c.Nums), nil }},
		{Name: "four-sum-count", Family: family, Summary: "tuples over four matrix rows summing to zero",
			Run: func(c Case) (any, error) {
				if len(c.Matrix) != 4 {
					return nil, fmt.Errorf("catalog: four-sum-count needs 4 rows, got %d", len(c.Matrix))
				}
				m := c.Matrix

				return lookup.FourSumCount(m[0], m[1], m[2], m[3]), nil
			}},
		{Name: "subarray-sum", Family: family, Summary: "subarrays of nums summing to k",
			Run: func(c Case) (any, error) { return lookup.SubarraySum(c.Nums, c.K), nil }},
		{Name: "contains-duplicate", Family: family, Summary: "any value repeated",
			Run: func(c Case) (any, error) { return lookup.ContainsDuplicate(c.Nums), nil }},
		{Name: "contains-nearby-duplicate", Family: family, Summary: "repeat within k positions",
			Run: func(c Case) (any, error) { return lookup.ContainsNearbyDuplicate(c.Nums, c.K), nil }},
		{Name: "longest-consecutive", Family: family, Summary: "longest run of consecutive values",
			Run: func(c Case) (any, error) { return lookup.LongestConsecutive(c.Nums), nil }},
		{Name: "top-k-frequent", Family: family, Summary: "k most frequent values",
			Run: func(c Case) (any, error) { return lookup.TopKFrequent(c.Nums, c.K) }},
		{Name: "group-anagrams", Family: family, Summary: "words grouped by letter multiset",
			Run: func(c Case) (any, error) { return lookup.GroupAnagrams(c.Words), nil }},
		{Name: "valid-anagram", Family: family, Summary: "s and t use the same letters",
			Run: func(c Case) (any, error) { return lookup.IsAnagram(c.S, c.T), nil }},
		{Name: "first-unique-char", Family: family, Summary: "index of the first non-repeating byte of s",
			Run: func(c Case) (any, error) { return lookup.FirstUniqueChar(c.S), nil }},
		{Name: "word-pattern", Family: family, Summary: "bijection between pattern s and words of t",
			Run: func(c Case) (any, error) { return lookup.WordPattern(c.S, c.T), nil }},
	}
}

func exprProblems() []Problem {
	const family = "expr"

	return []Problem{
		{Name: "valid-parentheses", Family: family, Summary: "balanced (), [] and {} in s",
			Run: func(c Case) (any, error) { return expr.IsValidParentheses(c.S), nil }},
		{Name: "calculate", Family: family, Summary: "evaluate infix expression s",
			Run: func(c Case) (any, error) { return expr.Calculate(c.S) }},
		{Name: "eval-rpn", Family: family, Summary: "evaluate Reverse Polish words",
			Run: func(c Case) (any, error) { return expr.EvalRPN(c.Words) }},
		{Name: "decode-string", Family: family, Summary: "expand k[...] groups in s",
			Run: func(c Case) (any, error) { return expr.DecodeString(c.S) }},
		{Name: "simplify-path", Family: family, Summary: "canonical absolute path of s",
			Run: func(c Case) (any, error) { return expr.SimplifyPath(c.S), nil }},
		{Name: "min-stack", Family: family, Summary: "replay push N/pop/top/min commands from words",
			Run: func(c Case) (any, error) { return replayMinStack(c.Words) }},
	}
}

// replayMinStack executes commands such as "push 3", "pop", "top" and
// "min" and collects the value produced by every command but push.
func replayMinStack(cmds []string) ([]int, error) {
	var (
		s   expr.MinStack
		out []int
	)
	for i, cmd := range cmds {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			return nil, fmt.Errorf("catalog: command %d is empty", i)
		}
		var (
			v   int
			err error
		)
		switch fields[0] {
		case "push":
			if len(fields) != 2 {
				return nil, fmt.Errorf("catalog: command %d: push takes one value", i)
			}
			if v, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("catalog: command %d: %w", i, err)
			}
			s.Push(v)

			continue
		case "pop":
			v, err = s.Pop()
		case "top":
			v, err = s.Top()
		case "min":
			v, err = s.Min()
		default:
			return nil, fmt.Errorf("catalog: command %d: unknown %q", i, fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: command %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func stackProblems() []Problem {
	const family = "monostack"

	return []Problem{
		{Name: "next-greater", Family: family, Summary: "next strictly greater value or -1",
			Run: func(c Case) (any, error) { return monostack.NextGreater(c.Nums), nil }},
		{Name: "next-greater-circular", Family: family, Summary: "next greater value, wrapping once",
			Run: func(c Case) (any, error) { return monostack.NextGreaterCircular(c.Nums), nil }},
		{Name: "prev-smaller", Family: family, Summary: "index of previous strictly smaller value or -1",
			Run: func(c Case) (any, error) { return monostack.PrevSmaller(c.Nums), nil }},
		{Name: "daily-temperatures", Family: family, Summary: "days until a warmer day",
			Run: func(c Case) (any, error) { return monostack.DailyTemperatures(c.Nums), nil }},
		{Name: "largest-rectangle", Family: family, Summary: "largest rectangle in histogram nums",
			Run: func(c Case) (any, error) { return monostack.LargestRectangle(c.Nums), nil }},
		{Name: "maximal-rectangle", Family: family, Summary: "largest all-'1' rectangle, rows as words",
			Run: func(c Case) (any, error) { return monostack.MaximalRectangle(byteRows(c.Words)), nil }},
		{Name: "trap", Family: family, Summary: "rain water over elevation nums",
			Run: func(c Case) (any, error) { return monostack.Trap(c.Nums), nil }},
		{Name: "sum-subarray-mins", Family: family, Summary: "sum of subarray minimums mod 1e9+7",
			Run: func(c Case) (any, error) { return monostack.SumSubarrayMins(c.Nums), nil }},
		{Name: "remove-k-digits", Family: family, Summary: "smallest number after removing k digits of s",
			Run: func(c Case) (any, error) { return monostack.RemoveKDigits(c.S, c.K), nil }},
		{Name: "max-sliding-window", Family: family, Summary: "maximum of every window of k",
			Run: func(c Case) (any, error) { return monostack.MaxSlidingWindow(c.Nums, c.K) }},
		{Name: "stock-spanner", Family: family, Summary: "span of every price in nums",
			Run: func(c Case) (any, error) {
				var sp monostack.StockSpanner
				out := make([]int, len(c.Nums))
				for i, p := range c.Nums {
					out[i] = sp.Next(p)
				}

				return out, nil
			}},
	}
}

func stringProblems() []Problem {
	const family = "strmatch"

	return []Problem{
		{Name: "kmp-index", Family: family, Summary: "first offset of pattern t in s (KMP)",
			Run: func(c Case) (any, error) { return strmatch.Index(c.S, c.T), nil }},
		{Name: "kmp-index-all", Family: family, Summary: "every offset of pattern t in s",
			Run: func(c Case) (any, error) { return strmatch.IndexAll(c.S, c.T), nil }},
		{Name: "rabin-karp", Family: family, Summary: "first offset of t in s (rolling hash)",
			Run: func(c Case) (any, error) { return strmatch.RabinKarp(c.S, c.T), nil }},
		{Name: "prefix-function", Family: family, Summary: "KMP failure function of s",
			Run: func(c Case) (any, error) { return strmatch.PrefixFunction(c.S), nil }},
		{Name: "z-function", Family: family, Summary: "Z-array of s",
			Run: func(c Case) (any, error) { return strmatch.ZFunction(c.S), nil }},
		{Name: "repeated-substring", Family: family, Summary: "s is a shorter string repeated",
			Run: func(c Case) (any, error) { return strmatch.RepeatedSubstringPattern(c.S), nil }},
		{Name: "shortest-palindrome", Family: family, Summary: "shortest palindrome by prepending to s",
			Run: func(c Case) (any, error) { return strmatch.ShortestPalindrome(c.S), nil }},
		{Name: "minimal-rotation", Family: family, Summary: "least rotation of s (Booth)",
			Run: func(c Case) (any, error) { return strmatch.MinimalRotation(c.S), nil }},
		{Name: "longest-palindrome", Family: family, Summary: "longest palindromic substring of s",
			Run: func(c Case) (any, error) { return strmatch.LongestPalindrome(c.S), nil }},
		{Name: "longest-substring", Family: family, Summary: "longest run of s without repeats",
			Run: func(c Case) (any, error) { return strmatch.LengthOfLongestSubstring(c.S), nil }},
		{Name: "min-window", Family: family, Summary: "shortest window of s covering t",
			Run: func(c Case) (any, error) { return strmatch.MinWindow(c.S, c.T), nil }},
		{Name: "find-anagrams", Family: family, Summary: "offsets of anagrams of t in s",
			Run: func(c Case) (any, error) { return strmatch.FindAnagrams(c.S, c.T), nil }},
		{Name: "check-inclusion", Family: family, Summary: "some permutation of t occurs in s",
			Run: func(c Case) (any, error) { return strmatch.CheckInclusion(c.T, c.S), nil }},
	}
}

func gridProblems() []Problem {
	const family = "grid"

	return []Problem{
		{Name: "num-islands", Family: family, Summary: "4-connected '1' regions, rows as words",
			Run: func(c Case) (any, error) { return grid.NumIslands(byteRows(c.Words)), nil }},
		{Name: "max-area-island", Family: family, Summary: "largest island of matrix",
			Run: func(c Case) (any, error) { return grid.MaxAreaOfIsland(c.Matrix), nil }},
		{Name: "shortest-bridge", Family: family, Summary: "fewest flips joining the two islands of matrix",
			Run: func(c Case) (any, error) { return grid.ShortestBridge(c.Matrix) }},
	}
}

func byteRows(words []string) [][]byte {
	rows := make([][]byte, len(words))
	for i, w := range words {
		rows[i] = []byte(w)
	}

	return rows
}
