package grid

import (
	"container/list"
	"fmt"
)

// Bridge finds the cheapest chain of water cells to convert so that island
// src and island dst (indices into Islands()) become connected. Each water
// cell costs 1; stepping onto land is free.
//
// It runs a multi-source 0-1 BFS from every cell of src: zero-cost moves
// go to the front of the deque, unit-cost moves to the back, so cells
// leave the deque in non-decreasing distance order. The first dst cell
// dequeued ends the search.
//
// Returns the row-major path from a src cell to a dst cell (both ends
// included) and the number of converted cells.
//
// Errors:
//   - ErrComponentIndex if src or dst is out of range.
//   - ErrNoPath if no route exists.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Grid) Bridge(src, dst int) (path []int, cost int, err error) {
	islands := g.Islands()
	if src < 0 || src >= len(islands) || dst < 0 || dst >= len(islands) {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d, have %d", ErrComponentIndex, src, dst, len(islands))
	}
	target := make(map[int]struct{}, len(islands[dst]))
	for _, i := range islands[dst] {
		target[i] = struct{}{}
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	for _, i := range islands[src] {
		dist[i] = 0
		dq.PushFront(i)
	}

	end := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if _, ok := target[u]; ok {
			end = u

			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range g.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			step := 1
			if g.IsLand(vx, vy) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if end < 0 {
		return nil, 0, ErrNoPath
	}

	for at := end; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[end], nil
}

// ShortestBridge returns the fewest 0-cells that must be flipped to join
// the two 4-connected islands of a 0/1 matrix.
//
// Errors:
//   - ErrEmptyGrid, ErrNonRectangular from New.
//   - ErrIslandCount unless the matrix holds exactly two islands.
func ShortestBridge(cells [][]int) (int, error) {
	g, err := New(cells, DefaultOptions())
	if err != nil {
		return 0, err
	}
	if n := len(g.Islands()); n != 2 {
		return 0, fmt.Errorf("%w: found %d", ErrIslandCount, n)
	}
	_, cost, err := g.Bridge(0, 1)

	return cost, err
}
