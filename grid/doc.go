// Package grid treats a 2D matrix of cells as a graph and solves the
// island exercises on it: counting and measuring islands and building the
// cheapest bridge between two of them.
//
// What:
//
//   - Grid wraps a rectangular [][]int with a tunable LandThreshold.
//   - Islands finds connected regions of cells with value ≥ LandThreshold (BFS).
//   - Bridge computes the minimal number of water conversions joining two
//     islands (0-1 BFS) and the path that achieves it.
//   - NumIslands, MaxAreaOfIsland, ShortestBridge: the classic exercise
//     signatures, built on Grid.
//
// Coordinates are (x, y) = (column, row); cells are also addressed by the
// row-major index y*Width + x, which Coordinate converts back.
//
// Complexity:
//
//   - Islands: O(W×H×d), Memory: O(W×H)    (d = number of neighbours, 4 or 8).
//   - Bridge:  O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Options.LandThreshold: minimum value considered land.
//   - Options.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested island index out of range.
//   - ErrNoPath:         no conversion path exists between the islands.
//   - ErrIslandCount:    ShortestBridge input does not hold exactly two islands.
package grid
