package tree

// MaxDepth returns the number of nodes on the longest root-to-leaf path.
func MaxDepth(root *Node) int {
	if root == nil {
		return 0
	}

	return 1 + max(MaxDepth(root.Left), MaxDepth(root.Right))
}

// MinDepth returns the number of nodes on the shortest root-to-leaf path.
// A node with one child is not a leaf. Breadth-first, so it stops at the
// first leaf.
func MinDepth(root *Node) int {
	if root == nil {
		return 0
	}
	depth := 1
	queue := []*Node{root}
	for len(queue) > 0 {
		width := len(queue)
		for _, n := range queue[:width] {
			if n.Left == nil && n.Right == nil {
				return depth
			}
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
		queue = queue[width:]
		depth++
	}

	return depth
}

// IsBalanced reports whether the depths of the two subtrees of every node
// differ by at most one.
func IsBalanced(root *Node) bool {
	return balancedHeight(root) >= 0
}

// balancedHeight returns the height of n, or -1 as soon as an unbalanced
// subtree is found.
func balancedHeight(n *Node) int {
	if n == nil {
		return 0
	}
	l := balancedHeight(n.Left)
	if l < 0 {
		return -1
	}
	r := balancedHeight(n.Right)
	if r < 0 || l-r > 1 || r-l > 1 {
		return -1
	}

	return 1 + max(l, r)
}

// IsSymmetric reports whether the tree is a mirror image of itself.
func IsSymmetric(root *Node) bool {
	return root == nil || mirror(root.Left, root.Right)
}

func mirror(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Val == b.Val && mirror(a.Left, b.Right) && mirror(a.Right, b.Left)
}

// IsSameTree reports whether a and b have identical shape and values.
func IsSameTree(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Val == b.Val && IsSameTree(a.Left, b.Left) && IsSameTree(a.Right, b.Right)
}

// Diameter returns the number of edges on the longest path between any two
// nodes. The path need not pass through the root.
func Diameter(root *Node) int {
	best := 0
	var height func(*Node) int
	height = func(n *Node) int {
		if n == nil {
			return 0
		}
		l, r := height(n.Left), height(n.Right)
		best = max(best, l+r)

		return 1 + max(l, r)
	}
	height(root)

	return best
}

// HasPathSum reports whether some root-to-leaf path sums to target.
func HasPathSum(root *Node, target int) bool {
	if root == nil {
		return false
	}
	rest := target - root.Val
	if root.Left == nil && root.Right == nil {
		return rest == 0
	}

	return HasPathSum(root.Left, rest) || HasPathSum(root.Right, rest)
}

// Invert mirrors the tree in place and returns its root.
func Invert(root *Node) *Node {
	if root == nil {
		return nil
	}
	root.Left, root.Right = Invert(root.Right), Invert(root.Left)

	return root
}

// LowestCommonAncestor returns the deepest node that has both p and q as
// descendants (a node is a descendant of itself). Both are assumed to be in
// the tree; if only one is, that node is returned.
func LowestCommonAncestor(root, p, q *Node) *Node {
	if root == nil || root == p || root == q {
		return root
	}
	l := LowestCommonAncestor(root.Left, p, q)
	r := LowestCommonAncestor(root.Right, p, q)
	if l != nil && r != nil {
		return root
	}
	if l != nil {
		return l
	}

	return r
}

// Find returns the first node holding v in preorder, or nil.
func Find(root *Node, v int) *Node {
	if root == nil || root.Val == v {
		return root
	}
	if n := Find(root.Left, v); n != nil {
		return n
	}

	return Find(root.Right, v)
}
