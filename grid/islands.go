package grid

// Islands finds every connected region of land cells under the grid's
// connectivity. Each island is a slice of row-major indices in BFS order;
// islands are ordered by their first cell in row-major scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Islands() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var islands [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.index(x, y)
			if !g.IsLand(x, y) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range g.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) || !g.IsLand(vx, vy) {
						continue
					}
					if vi := g.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			islands = append(islands, queue)
		}
	}

	return islands
}

// NumIslands counts 4-connected regions of '1' in a character grid.
// Short rows are padded with water; an empty grid has no islands.
func NumIslands(cells [][]byte) int {
	g, err := New(pad(cells, func(b byte) int {
		if b == '1' {
			return 1
		}

		return 0
	}), DefaultOptions())
	if err != nil {
		return 0
	}

	return len(g.Islands())
}

// MaxAreaOfIsland returns the size of the largest 4-connected region of
// cells equal to 1 or more, or 0 when there is none.
func MaxAreaOfIsland(cells [][]int) int {
	g, err := New(pad(cells, func(v int) int { return v }), DefaultOptions())
	if err != nil {
		return 0
	}
	best := 0
	for _, island := range g.Islands() {
		best = max(best, len(island))
	}

	return best
}

// pad converts a possibly ragged matrix into a rectangular [][]int,
// filling missing cells with 0.
func pad[T any](cells [][]T, conv func(T) int) [][]int {
	w := 0
	for _, row := range cells {
		w = max(w, len(row))
	}
	out := make([][]int, len(cells))
	for y, row := range cells {
		out[y] = make([]int, w)
		for x, v := range row {
			out[y][x] = conv(v)
		}
	}

	return out
}
