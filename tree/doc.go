// Package tree implements the binary tree exercises: traversals,
// structural properties, construction from traversals, a string codec and
// binary search tree (BST) operations. All of them work on *Node, where nil
// is the empty tree.
//
// What
//
//   - Level-order helpers: FromLevelOrder / ToLevelOrder (LeetCode array form).
//   - Depth-first traversals, iterative with an explicit stack and recursive:
//     Preorder, Inorder, Postorder, plus MorrisInorder in O(1) extra space.
//   - Breadth-first traversals: LevelOrder, ZigzagLevelOrder, RightSideView.
//   - Properties: MaxDepth, MinDepth, IsBalanced, IsSymmetric, IsSameTree,
//     Diameter, HasPathSum, LowestCommonAncestor; Invert mutates in place.
//   - Construction: BuildFromPreIn, BuildFromInPost (distinct values).
//   - Codec: Serialize / Deserialize in preorder with "#" for nil.
//   - BST: Insert, Delete, SearchBST, IsValidBST, KthSmallest,
//     LowestCommonAncestorBST, SortedArrayToBST, MinValue, MaxValue,
//     InorderSuccessor and an in-order Iterator.
//
// BST property
//
//	Every value in the left subtree of a node is strictly smaller than the
//	node, every value in the right subtree strictly greater. Insert ignores
//	duplicates to keep it that way.
//
// Complexity (n nodes, h height)
//
//   - Traversals, properties, codec, construction: O(n) time.
//   - BST search, insert, delete, successor: O(h) time.
//   - Recursive helpers use O(h) stack; iterative traversals O(h) heap.
//
// Errors
//
//   - ErrMismatchedTraversals from the Build* functions.
//   - ErrMalformed            from Deserialize.
//   - ErrInvalidK             from KthSmallest.
//   - ErrEmptyTree            from MinValue / MaxValue.
//   - ErrExhausted            from Iterator.Next.
package tree
