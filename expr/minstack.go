package expr

// MinStack is an int stack that also reports its minimum in O(1).
// Each entry records the minimum of itself and everything below it.
// The zero value is an empty stack ready to use.
type MinStack struct {
	items []minEntry
}

type minEntry struct {
	val, min int
}

// Push adds v on top.
func (s *MinStack) Push(v int) {
	m := v
	if n := len(s.items); n > 0 {
		m = min(m, s.items[n-1].min)
	}
	s.items = append(s.items, minEntry{val: v, min: m})
}

// Pop removes and returns the top value.
func (s *MinStack) Pop() (int, error) {
	n := len(s.items)
	if n == 0 {
		return 0, ErrEmptyStack
	}
	v := s.items[n-1].val
	s.items = s.items[:n-1]

	return v, nil
}

// Top returns the top value without removing it.
func (s *MinStack) Top() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}

	return s.items[len(s.items)-1].val, nil
}

// Min returns the smallest value currently on the stack.
func (s *MinStack) Min() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}

	return s.items[len(s.items)-1].min, nil
}

// Len returns the number of values on the stack.
func (s *MinStack) Len() int { return len(s.items) }
