package tree

import (
	"errors"
	"math"
)

// Sentinel errors for tree operations.
var (
	// ErrMismatchedTraversals indicates two traversals that cannot describe
	// the same tree of distinct values.
	ErrMismatchedTraversals = errors.New("tree: traversals do not describe one tree")

	// ErrMalformed indicates a serialized tree that cannot be decoded.
	ErrMalformed = errors.New("tree: malformed serialization")

	// ErrInvalidK indicates a rank outside [1, size].
	ErrInvalidK = errors.New("tree: k out of range")

	// ErrEmptyTree indicates an operation that needs at least one node.
	ErrEmptyTree = errors.New("tree: tree is empty")

	// ErrExhausted is returned by Iterator.Next once every value was produced.
	ErrExhausted = errors.New("tree: iterator exhausted")
)

// Node is a binary tree node. A nil *Node is the empty tree.
type Node struct {
	Val         int
	Left, Right *Node
}

// New returns a leaf holding v.
func New(v int) *Node { return &Node{Val: v} }

// Null marks a missing node in the level-order helpers.
const Null = math.MinInt

// Ints converts vals to the nullable form used by FromLevelOrder, mapping
// Null to nil.
//
//	tree.FromLevelOrder(tree.Ints(1, tree.Null, 2, 3))
func Ints(vals ...int) []*int {
	out := make([]*int, len(vals))
	for i, v := range vals {
		if v == Null {
			continue
		}
		v := v
		out[i] = &v
	}

	return out
}

// FromLevelOrder builds a tree from its level-order listing in the usual
// LeetCode form: children of every non-nil node are listed left then right,
// nil marks a missing child, trailing nils may be omitted.
func FromLevelOrder(vals []*int) *Node {
	if len(vals) == 0 || vals[0] == nil {
		return nil
	}
	root := New(*vals[0])
	queue := []*Node{root}
	i := 1
	for len(queue) > 0 && i < len(vals) {
		n := queue[0]
		queue = queue[1:]
		if i < len(vals) && vals[i] != nil {
			n.Left = New(*vals[i])
			queue = append(queue, n.Left)
		}
		i++
		if i < len(vals) && vals[i] != nil {
			n.Right = New(*vals[i])
			queue = append(queue, n.Right)
		}
		i++
	}

	return root
}

// ToLevelOrder is the inverse of FromLevelOrder; trailing nils are trimmed.
func ToLevelOrder(root *Node) []*int {
	if root == nil {
		return nil
	}
	var out []*int
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			out = append(out, nil)
			continue
		}
		v := n.Val
		out = append(out, &v)
		queue = append(queue, n.Left, n.Right)
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}

	return out
}

// Size returns the number of nodes.
func Size(root *Node) int {
	if root == nil {
		return 0
	}

	return 1 + Size(root.Left) + Size(root.Right)
}
