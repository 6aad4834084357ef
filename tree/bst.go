package tree

// Insert adds v to the BST rooted at root and returns the (possibly new)
// root. Duplicates are ignored.
func Insert(root *Node, v int) *Node {
	if root == nil {
		return New(v)
	}
	cur := root
	for {
		switch {
		case v < cur.Val:
			if cur.Left == nil {
				cur.Left = New(v)
				return root
			}
			cur = cur.Left
		case v > cur.Val:
			if cur.Right == nil {
				cur.Right = New(v)
				return root
			}
			cur = cur.Right
		default:
			return root
		}
	}
}

// FromValues inserts vals one by one into an empty BST.
func FromValues(vals ...int) *Node {
	var root *Node
	for _, v := range vals {
		root = Insert(root, v)
	}

	return root
}

// Delete removes v from the BST and returns the new root. A node with two
// children takes the value of its in-order successor, which is then removed
// from the right subtree. Deleting an absent value is a no-op.
func Delete(root *Node, v int) *Node {
	if root == nil {
		return nil
	}
	switch {
	case v < root.Val:
		root.Left = Delete(root.Left, v)
	case v > root.Val:
		root.Right = Delete(root.Right, v)
	default:
		if root.Left == nil {
			return root.Right
		}
		if root.Right == nil {
			return root.Left
		}
		succ := root.Right
		for succ.Left != nil {
			succ = succ.Left
		}
		root.Val = succ.Val
		root.Right = Delete(root.Right, succ.Val)
	}

	return root
}

// SearchBST returns the node holding v, or nil.
func SearchBST(root *Node, v int) *Node {
	for root != nil && root.Val != v {
		if v < root.Val {
			root = root.Left
		} else {
			root = root.Right
		}
	}

	return root
}

// IsValidBST reports whether every node satisfies the strict BST property
// against all of its ancestors, not just its parent.
func IsValidBST(root *Node) bool {
	var check func(n, lo, hi *Node) bool
	check = func(n, lo, hi *Node) bool {
		if n == nil {
			return true
		}
		if (lo != nil && n.Val <= lo.Val) || (hi != nil && n.Val >= hi.Val) {
			return false
		}

		return check(n.Left, lo, n) && check(n.Right, n, hi)
	}

	return check(root, nil, nil)
}

// KthSmallest returns the k-th smallest value (1-based) with an iterative
// in-order walk that stops after k nodes.
//
// Errors:
//   - ErrInvalidK if k < 1 or the tree has fewer than k nodes.
func KthSmallest(root *Node, k int) (int, error) {
	if k < 1 {
		return 0, ErrInvalidK
	}
	var stack []*Node
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		k--
		if k == 0 {
			return cur.Val, nil
		}
		cur = cur.Right
	}

	return 0, ErrInvalidK
}

// LowestCommonAncestorBST returns the split point of p and q in a BST:
// the first node whose value lies between them (inclusive). It returns nil
// for an empty tree. Both values are assumed present.
func LowestCommonAncestorBST(root *Node, p, q int) *Node {
	lo, hi := min(p, q), max(p, q)
	for root != nil {
		switch {
		case hi < root.Val:
			root = root.Left
		case lo > root.Val:
			root = root.Right
		default:
			return root
		}
	}

	return nil
}

// SortedArrayToBST builds a height-balanced BST from ascending values by
// picking the middle element (lower middle for even lengths) as root.
func SortedArrayToBST(a []int) *Node {
	if len(a) == 0 {
		return nil
	}
	mid := (len(a) - 1) / 2

	return &Node{
		Val:   a[mid],
		Left:  SortedArrayToBST(a[:mid]),
		Right: SortedArrayToBST(a[mid+1:]),
	}
}

// MinValue returns the smallest value in a BST.
func MinValue(root *Node) (int, error) {
	if root == nil {
		return 0, ErrEmptyTree
	}
	for root.Left != nil {
		root = root.Left
	}

	return root.Val, nil
}

// MaxValue returns the largest value in a BST.
func MaxValue(root *Node) (int, error) {
	if root == nil {
		return 0, ErrEmptyTree
	}
	for root.Right != nil {
		root = root.Right
	}

	return root.Val, nil
}

// InorderSuccessor returns the node with the smallest value greater than
// p.Val, or nil if p holds the maximum.
func InorderSuccessor(root, p *Node) *Node {
	if p == nil {
		return nil
	}
	var succ *Node
	for root != nil {
		if p.Val < root.Val {
			succ = root // candidate; look for a smaller one on the left
			root = root.Left
		} else {
			root = root.Right
		}
	}

	return succ
}
