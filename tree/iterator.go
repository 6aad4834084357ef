package tree

// Iterator yields the values of a BST in ascending order. It keeps only the
// left spine of the unvisited part, so memory is O(h) and each Next call is
// amortised O(1).
//
//	it := tree.NewIterator(root)
//	for it.HasNext() {
//		v, _ := it.Next()
//		...
//	}
type Iterator struct {
	stack []*Node
}

// NewIterator positions an iterator before the smallest value of root.
func NewIterator(root *Node) *Iterator {
	it := &Iterator{}
	it.pushLeft(root)

	return it
}

// HasNext reports whether Next would return a value.
func (it *Iterator) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next value in ascending order, or ErrExhausted.
func (it *Iterator) Next() (int, error) {
	if len(it.stack) == 0 {
		return 0, ErrExhausted
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.Right)

	return n.Val, nil
}

func (it *Iterator) pushLeft(n *Node) {
	for ; n != nil; n = n.Left {
		it.stack = append(it.stack, n)
	}
}
