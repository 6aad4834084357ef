package catalog

import (
	"fmt"

	"github.com/katalvlaran/lvlkata/bsearch"
	"github.com/katalvlaran/lvlkata/linkedlist"
	"github.com/katalvlaran/lvlkata/sorting"
	"github.com/katalvlaran/lvlkata/tree"
)

// Runner inputs follow one convention across the catalog: the primary
// slice is nums, a second slice nums2, scalars target and k, strings s and
// t, binary trees tree (level order) and 2D inputs matrix or words.
// Trees and lists are returned in their slice forms.

func searchProblems() []Problem {
	const family = "bsearch"

	return []Problem{
		{Name: "binary-search", Family: family, Summary: "index of target in sorted nums, or -1",
			Run: func(c Case) (any, error) { return bsearch.Search(c.Nums, c.Target), nil }},
		{Name: "search-range", Family: family, Summary: "first and last index of target",
			Run: func(c Case) (any, error) { return bsearch.SearchRange(c.Nums, c.Target), nil }},
		{Name: "search-insert", Family: family, Summary: "insertion index of target",
			Run: func(c Case) (any, error) { return bsearch.SearchInsert(c.Nums, c.Target), nil }},
		{Name: "search-rotated", Family: family, Summary: "index of target in a rotated sorted array",
			Run: func(c Case) (any, error) { return bsearch.SearchRotated(c.Nums, c.Target), nil }},
		{Name: "find-min-rotated", Family: family, Summary: "minimum of a rotated sorted array",
			Run: func(c Case) (any, error) { return bsearch.FindMinRotated(c.Nums) }},
		{Name: "find-peak", Family: family, Summary: "index of a peak element",
			Run: func(c Case) (any, error) { return bsearch.FindPeak(c.Nums) }},
		{Name: "sqrt", Family: family, Summary: "floor square root of target",
			Run: func(c Case) (any, error) { return bsearch.Sqrt(c.Target) }},
		{Name: "search-matrix", Family: family, Summary: "target in a row-major sorted matrix",
			Run: func(c Case) (any, error) { return bsearch.SearchMatrix(c.Matrix, c.Target), nil }},
		{Name: "median-two-sorted", Family: family, Summary: "median of sorted nums and nums2",
			Run: func(c Case) (any, error) { return bsearch.MedianOfTwoSorted(c.Nums, c.Nums2) }},
	}
}

func sortingProblems() []Problem {
	const family = "sorting"

	return []Problem{
		{Name: "sort", Family: family, Summary: "sort nums with algorithm s (quick by default)",
			Run: func(c Case) (any, error) {
				alg := sorting.QuickSort
				if c.S != "" {
					var err error
					if alg, err = sorting.ParseAlgorithm(c.S); err != nil {
						return nil, err
					}
				}
				a := clone(c.Nums)
				if err := sorting.Sort(a, sorting.WithAlgorithm(alg)); err != nil {
					return nil, err
				}

				return a, nil
			}},
		{Name: "radix-sort", Family: family, Summary: "LSD radix sort of non-negative nums",
			Run: func(c Case) (any, error) {
				a := clone(c.Nums)
				if err := sorting.Radix(a); err != nil {
					return nil, err
				}

				return a, nil
			}},
		{Name: "kth-largest", Family: family, Summary: "k-th largest element of nums",
			Run: func(c Case) (any, error) { return sorting.KthLargest(c.Nums, c.K) }},
		{Name: "sort-colors", Family: family, Summary: "Dutch national flag over 0, 1, 2",
			Run: func(c Case) (any, error) {
				a := clone(c.Nums)
				sorting.SortColors(a)

				return a, nil
			}},
		{Name: "merge-intervals", Family: family, Summary: "merge overlapping [start, end] rows of matrix",
			Run: func(c Case) (any, error) {
				iv := make([][2]int, len(c.Matrix))
				for i, row := range c.Matrix {
					if len(row) != 2 {
						return nil, fmt.Errorf("catalog: interval %d has %d values, want 2", i, len(row))
					}
					iv[i] = [2]int{row[0], row[1]}
				}

				return sorting.MergeIntervals(iv), nil
			}},
		{Name: "count-inversions", Family: family, Summary: "pairs i<j with nums[i] > nums[j]",
			Run: func(c Case) (any, error) { return sorting.CountInversions(c.Nums), nil }},
	}
}

func treeProblems() []Problem {
	const family = "tree"
	build := func(c Case) *tree.Node { return tree.FromLevelOrder(c.Tree) }

	return []Problem{
		{Name: "tree-preorder", Family: family, Summary: "preorder traversal",
			Run: func(c Case) (any, error) { return tree.Preorder(build(c)), nil }},
		{Name: "tree-inorder", Family: family, Summary: "inorder traversal",
			Run: func(c Case) (any, error) { return tree.Inorder(build(c)), nil }},
		{Name: "tree-postorder", Family: family, Summary: "postorder traversal",
			Run: func(c Case) (any, error) { return tree.Postorder(build(c)), nil }},
		{Name: "tree-level-order", Family: family, Summary: "values grouped by depth",
			Run: func(c Case) (any, error) { return tree.LevelOrder(build(c)), nil }},
		{Name: "tree-zigzag", Family: family, Summary: "level order alternating direction",
			Run: func(c Case) (any, error) { return tree.ZigzagLevelOrder(build(c)), nil }},
		{Name: "tree-right-side", Family: family, Summary: "rightmost value of every level",
			Run: func(c Case) (any, error) { return tree.RightSideView(build(c)), nil }},
		{Name: "tree-max-depth", Family: family, Summary: "number of levels",
			Run: func(c Case) (any, error) { return tree.MaxDepth(build(c)), nil }},
		{Name: "tree-diameter", Family: family, Summary: "longest path in edges",
			Run: func(c Case) (any, error) { return tree.Diameter(build(c)), nil }},
		{Name: "tree-balanced", Family: family, Summary: "height-balanced check",
			Run: func(c Case) (any, error) { return tree.IsBalanced(build(c)), nil }},
		{Name: "tree-symmetric", Family: family, Summary: "mirror symmetry check",
			Run: func(c Case) (any, error) { return tree.IsSymmetric(build(c)), nil }},
		{Name: "tree-path-sum", Family: family, Summary: "root-to-leaf path summing to target",
			Run: func(c Case) (any, error) { return tree.HasPathSum(build(c), c.Target), nil }},
		{Name: "tree-invert", Family: family, Summary: "mirror the tree",
			Run: func(c Case) (any, error) { return tree.ToLevelOrder(tree.Invert(build(c))), nil }},
		{Name: "tree-serialize", Family: family, Summary: "preorder codec string",
			Run: func(c Case) (any, error) { return tree.Serialize(build(c)), nil }},
		{Name: "build-pre-in", Family: family, Summary: "tree from preorder nums and inorder nums2",
			Run: func(c Case) (any, error) {
				root, err := tree.BuildFromPreIn(c.Nums, c.Nums2)
				if err != nil {
					return nil, err
				}

				return tree.ToLevelOrder(root), nil
			}},
		{Name: "build-in-post", Family: family, Summary: "tree from inorder nums and postorder nums2",
			Run: func(c Case) (any, error) {
				root, err := tree.BuildFromInPost(c.Nums, c.Nums2)
				if err != nil {
					return nil, err
				}

				return tree.ToLevelOrder(root), nil
			}},
		{Name: "bst-valid", Family: family, Summary: "binary search tree check",
			Run: func(c Case) (any, error) { return tree.IsValidBST(build(c)), nil }},
		{Name: "bst-kth-smallest", Family: family, Summary: "k-th smallest value of a BST",
			Run: func(c Case) (any, error) { return tree.KthSmallest(build(c), c.K) }},
		{Name: "bst-insert", Family: family, Summary: "insert nums one by one into an empty BST",
			Run: func(c Case) (any, error) { return tree.ToLevelOrder(tree.FromValues(c.Nums...)), nil }},
		{Name: "bst-delete", Family: family, Summary: "delete target from a BST",
			Run: func(c Case) (any, error) { return tree.ToLevelOrder(tree.Delete(build(c), c.Target)), nil }},
		{Name: "sorted-array-to-bst", Family: family, Summary: "height-balanced BST from sorted nums",
			Run: func(c Case) (any, error) { return tree.ToLevelOrder(tree.SortedArrayToBST(c.Nums)), nil }},
	}
}

func listProblems() []Problem {
	const family = "linkedlist"
	list := linkedlist.FromSlice

	return []Problem{
		{Name: "reverse-list", Family: family, Summary: "reverse nums as a linked list",
			Run: func(c Case) (any, error) { return linkedlist.ToSlice(linkedlist.Reverse(list(c.Nums))), nil }},
		{Name: "merge-two-lists", Family: family, Summary: "merge sorted nums and nums2",
			Run: func(c Case) (any, error) {
				return linkedlist.ToSlice(linkedlist.MergeTwo(list(c.Nums), list(c.Nums2))), nil
			}},
		{Name: "add-two-numbers", Family: family, Summary: "digit-reversed sum of nums and nums2",
			Run: func(c Case) (any, error) {
				return linkedlist.ToSlice(linkedlist.AddTwoNumbers(list(c.Nums), list(c.Nums2))), nil
			}},
		{Name: "middle-node", Family: family, Summary: "list from the middle node on",
			Run: func(c Case) (any, error) { return linkedlist.ToSlice(linkedlist.Middle(list(c.Nums))), nil }},
		{Name: "remove-nth-from-end", Family: family, Summary: "drop the k-th node from the end",
			Run: func(c Case) (any, error) {
				head, err := linkedlist.RemoveNthFromEnd(list(c.Nums), c.K)
				if err != nil {
					return nil, err
				}

				return linkedlist.ToSlice(head), nil
			}},
		{Name: "list-palindrome", Family: family, Summary: "nums reads the same both ways",
			Run: func(c Case) (any, error) { return linkedlist.IsPalindrome(list(c.Nums)), nil }},
	}
}

func clone(a []int) []int {
	return append([]int(nil), a...)
}
