package monostack

// LargestRectangle returns the area of the largest rectangle that fits
// under the histogram h (bar width 1).
//
// Bars are kept on an increasing stack; when bar i is lower than the top,
// the popped bar's rectangle extends from the new top+1 to i-1.
func LargestRectangle(h []int) int {
	best := 0
	var stack []int
	for i := 0; i <= len(h); i++ {
		cur := 0 // sentinel flushes the stack at the end
		if i < len(h) {
			cur = h[i]
		}
		for len(stack) > 0 && h[stack[len(stack)-1]] >= cur {
			height := h[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			left := -1
			if len(stack) > 0 {
				left = stack[len(stack)-1]
			}
			best = max(best, height*(i-left-1))
		}
		stack = append(stack, i)
	}

	return best
}

// MaximalRectangle returns the area of the largest all-'1' rectangle in a
// binary matrix. Each row turns into a histogram of consecutive '1's above
// it and LargestRectangle is applied per row. Short rows are padded with '0'.
func MaximalRectangle(m [][]byte) int {
	if len(m) == 0 {
		return 0
	}
	width := 0
	for _, row := range m {
		width = max(width, len(row))
	}
	heights := make([]int, width)
	best := 0
	for _, row := range m {
		for c := range heights {
			if c < len(row) && row[c] == '1' {
				heights[c]++
			} else {
				heights[c] = 0
			}
		}
		best = max(best, LargestRectangle(heights))
	}

	return best
}

// Trap returns how much rain water the elevation map h holds.
// A decreasing stack of bars is kept; each pop bounded on both sides fills
// one horizontal layer of water.
func Trap(h []int) int {
	water := 0
	var stack []int
	for i, v := range h {
		for len(stack) > 0 && h[stack[len(stack)-1]] < v {
			bottom := h[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			left := stack[len(stack)-1]
			water += (min(h[left], v) - bottom) * (i - left - 1)
		}
		stack = append(stack, i)
	}

	return water
}

// SumSubarrayMins returns the sum of min(sub) over every contiguous
// subarray of a, modulo Modulus.
//
// a[i] is the minimum of left[i]*right[i] subarrays, where left counts
// back to the previous strictly smaller element and right forward to the
// next smaller-or-equal one; the asymmetry counts ties exactly once.
func SumSubarrayMins(a []int) int {
	n := len(a)
	left := make([]int, n)
	right := make([]int, n)
	var stack []int
	for i := 0; i < n; i++ {
		for len(stack) > 0 && a[stack[len(stack)-1]] >= a[i] {
			stack = stack[:len(stack)-1]
		}
		left[i] = i + 1
		if len(stack) > 0 {
			left[i] = i - stack[len(stack)-1]
		}
		stack = append(stack, i)
	}
	stack = stack[:0]
	for i := n - 1; i >= 0; i-- {
		for len(stack) > 0 && a[stack[len(stack)-1]] > a[i] {
			stack = stack[:len(stack)-1]
		}
		right[i] = n - i
		if len(stack) > 0 {
			right[i] = stack[len(stack)-1] - i
		}
		stack = append(stack, i)
	}

	sum := 0
	for i, v := range a {
		v = (v%Modulus + Modulus) % Modulus
		sum = (sum + v*left[i]%Modulus*right[i]) % Modulus
	}

	return sum
}
