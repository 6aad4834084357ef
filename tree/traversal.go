package tree

import "slices"

// Preorder returns node values in root-left-right order using an explicit stack.
func Preorder(root *Node) []int {
	if root == nil {
		return nil
	}
	var out []int
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Val)
		// right first so that left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return out
}

// Inorder returns node values in left-root-right order using an explicit stack.
func Inorder(root *Node) []int {
	var out []int
	var stack []*Node
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.Val)
		cur = cur.Right
	}

	return out
}

// Postorder returns node values in left-right-root order using one stack and
// a pointer to the last emitted node.
func Postorder(root *Node) []int {
	var out []int
	var stack []*Node
	var last *Node
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		top := stack[len(stack)-1]
		if top.Right != nil && top.Right != last {
			cur = top.Right // right subtree not done yet
			continue
		}
		out = append(out, top.Val)
		last = top
		stack = stack[:len(stack)-1]
	}

	return out
}

// PreorderRecursive is the recursive form of Preorder.
func PreorderRecursive(root *Node) []int {
	var out []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.Val)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return out
}

// InorderRecursive is the recursive form of Inorder.
func InorderRecursive(root *Node) []int {
	var out []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Val)
		walk(n.Right)
	}
	walk(root)

	return out
}

// PostorderRecursive is the recursive form of Postorder.
func PostorderRecursive(root *Node) []int {
	var out []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		walk(n.Right)
		out = append(out, n.Val)
	}
	walk(root)

	return out
}

// MorrisInorder performs an in-order traversal in O(1) extra space by
// temporarily threading each in-order predecessor's right pointer back to
// its successor. Every thread is removed again, so the tree is unchanged
// when the call returns.
func MorrisInorder(root *Node) []int {
	var out []int
	cur := root
	for cur != nil {
		if cur.Left == nil {
			out = append(out, cur.Val)
			cur = cur.Right
			continue
		}
		pred := cur.Left
		for pred.Right != nil && pred.Right != cur {
			pred = pred.Right
		}
		if pred.Right == nil {
			pred.Right = cur // thread
			cur = cur.Left
		} else {
			pred.Right = nil // unthread
			out = append(out, cur.Val)
			cur = cur.Right
		}
	}

	return out
}

// LevelOrder returns the values level by level, left to right.
func LevelOrder(root *Node) [][]int {
	if root == nil {
		return nil
	}
	var levels [][]int
	queue := []*Node{root}
	for len(queue) > 0 {
		width := len(queue)
		level := make([]int, 0, width)
		for _, n := range queue[:width] {
			level = append(level, n.Val)
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
		queue = queue[width:]
		levels = append(levels, level)
	}

	return levels
}

// ZigzagLevelOrder is LevelOrder with every second level reversed,
// starting right-to-left on the second level.
func ZigzagLevelOrder(root *Node) [][]int {
	levels := LevelOrder(root)
	for i := 1; i < len(levels); i += 2 {
		slices.Reverse(levels[i])
	}

	return levels
}

// RightSideView returns the last value of every level.
func RightSideView(root *Node) []int {
	var out []int
	for _, level := range LevelOrder(root) {
		out = append(out, level[len(level)-1])
	}

	return out
}
