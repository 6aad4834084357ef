package tree

import "fmt"

// BuildFromPreIn reconstructs the tree whose preorder and inorder traversals
// are pre and in. Values must be distinct.
//
// The first preorder value is the root; its inorder position splits the
// inorder slice into the left and right subtrees. A value→index map makes
// each split O(1), so the whole build is O(n).
//
// Errors:
//   - ErrMismatchedTraversals if lengths differ, values repeat, or the two
//     listings disagree.
func BuildFromPreIn(pre, in []int) (*Node, error) {
	pos, err := indexInorder(pre, in)
	if err != nil {
		return nil, err
	}

	next := 0 // cursor into pre
	var build func(lo, hi int) (*Node, error)
	build = func(lo, hi int) (*Node, error) {
		if lo > hi {
			return nil, nil
		}
		v := pre[next]
		next++
		i, ok := pos[v]
		if !ok || i < lo || i > hi {
			return nil, fmt.Errorf("%w: %d is outside its subtree", ErrMismatchedTraversals, v)
		}
		n := New(v)
		var err error
		if n.Left, err = build(lo, i-1); err != nil {
			return nil, err
		}
		if n.Right, err = build(i+1, hi); err != nil {
			return nil, err
		}

		return n, nil
	}

	return build(0, len(in)-1)
}

// BuildFromInPost reconstructs the tree from its inorder and postorder
// traversals. The last postorder value is the root; consuming postorder
// from the back yields the right subtree before the left.
//
// Errors:
//   - ErrMismatchedTraversals as for BuildFromPreIn.
func BuildFromInPost(in, post []int) (*Node, error) {
	pos, err := indexInorder(post, in)
	if err != nil {
		return nil, err
	}

	next := len(post) - 1
	var build func(lo, hi int) (*Node, error)
	build = func(lo, hi int) (*Node, error) {
		if lo > hi {
			return nil, nil
		}
		v := post[next]
		next--
		i, ok := pos[v]
		if !ok || i < lo || i > hi {
			return nil, fmt.Errorf("%w: %d is outside its subtree", ErrMismatchedTraversals, v)
		}
		n := New(v)
		var err error
		if n.Right, err = build(i+1, hi); err != nil {
			return nil, err
		}
		if n.Left, err = build(lo, i-1); err != nil {
			return nil, err
		}

		return n, nil
	}

	return build(0, len(in)-1)
}

// indexInorder maps each inorder value to its index after checking that
// other and in have the same length and in holds distinct values.
func indexInorder(other, in []int) (map[int]int, error) {
	if len(other) != len(in) {
		return nil, fmt.Errorf("%w: lengths %d and %d", ErrMismatchedTraversals, len(other), len(in))
	}
	pos := make(map[int]int, len(in))
	for i, v := range in {
		if _, dup := pos[v]; dup {
			return nil, fmt.Errorf("%w: duplicate value %d", ErrMismatchedTraversals, v)
		}
		pos[v] = i
	}

	return pos, nil
}
