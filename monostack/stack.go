package monostack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWindow indicates a sliding window size outside [1, len(a)].
var ErrInvalidWindow = errors.New("monostack: invalid window size")

// Modulus is the modulus applied by SumSubarrayMins.
const Modulus = 1_000_000_007

// NextGreater returns, for each a[i], the first value to its right that is
// strictly greater, or -1.
func NextGreater(a []int) []int {
	res := fill(len(a), -1)
	var stack []int // indices, values decreasing
	for i, v := range a {
		for len(stack) > 0 && a[stack[len(stack)-1]] < v {
			res[stack[len(stack)-1]] = v
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, i)
	}

	return res
}

// NextGreaterCircular is NextGreater where the search wraps around the end
// of the slice once.
func NextGreaterCircular(a []int) []int {
	n := len(a)
	res := fill(n, -1)
	var stack []int
	for j := 0; j < 2*n; j++ {
		v := a[j%n]
		for len(stack) > 0 && a[stack[len(stack)-1]] < v {
			res[stack[len(stack)-1]] = v
			stack = stack[:len(stack)-1]
		}
		if j < n {
			stack = append(stack, j)
		}
	}

	return res
}

// PrevSmaller returns, for each i, the index of the nearest element to the
// left that is strictly smaller than a[i], or -1.
func PrevSmaller(a []int) []int {
	res := make([]int, len(a))
	var stack []int // indices, values increasing
	for i, v := range a {
		for len(stack) > 0 && a[stack[len(stack)-1]] >= v {
			stack = stack[:len(stack)-1]
		}
		res[i] = -1
		if len(stack) > 0 {
			res[i] = stack[len(stack)-1]
		}
		stack = append(stack, i)
	}

	return res
}

// DailyTemperatures returns how many days one must wait after day i for a
// strictly warmer temperature, or 0 if none comes.
func DailyTemperatures(t []int) []int {
	res := make([]int, len(t))
	var stack []int
	for i, v := range t {
		for len(stack) > 0 && t[stack[len(stack)-1]] < v {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			res[j] = i - j
		}
		stack = append(stack, i)
	}

	return res
}

// RemoveKDigits removes k digits from the decimal string num so that the
// remaining number is as small as possible. Leading zeros are stripped and
// an empty result is "0". k ≤ 0 returns num unchanged.
func RemoveKDigits(num string, k int) string {
	if k <= 0 {
		return num
	}
	if k >= len(num) {
		return "0"
	}
	stack := make([]byte, 0, len(num))
	for i := 0; i < len(num); i++ {
		c := num[i]
		for k > 0 && len(stack) > 0 && stack[len(stack)-1] > c {
			stack = stack[:len(stack)-1]
			k--
		}
		stack = append(stack, c)
	}
	stack = stack[:len(stack)-k] // still-monotone tail

	out := strings.TrimLeft(string(stack), "0")
	if out == "" {
		return "0"
	}

	return out
}

// StockSpanner reports, for each day's price, how many consecutive days
// ending today had a price less than or equal to today's.
// The zero value is ready to use.
type StockSpanner struct {
	stack []span
}

type span struct {
	price, days int
}

// Next records today's price and returns its span.
func (s *StockSpanner) Next(price int) int {
	days := 1
	for len(s.stack) > 0 && s.stack[len(s.stack)-1].price <= price {
		days += s.stack[len(s.stack)-1].days
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.stack = append(s.stack, span{price: price, days: days})

	return days
}

// MaxSlidingWindow returns the maximum of every window of k consecutive
// elements, using a deque of indices whose values decrease front to back.
//
// Errors:
//   - ErrInvalidWindow if k < 1 or k > len(a).
func MaxSlidingWindow(a []int, k int) ([]int, error) {
	if k < 1 || k > len(a) {
		return nil, fmt.Errorf("%w: k=%d, len=%d", ErrInvalidWindow, k, len(a))
	}
	res := make([]int, 0, len(a)-k+1)
	deque := make([]int, 0, k)
	for i, v := range a {
		if len(deque) > 0 && deque[0] <= i-k {
			deque = deque[1:]
		}
		for len(deque) > 0 && a[deque[len(deque)-1]] <= v {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, i)
		if i >= k-1 {
			res = append(res, a[deque[0]])
		}
	}

	return res, nil
}

func fill(n, v int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = v
	}

	return res
}
