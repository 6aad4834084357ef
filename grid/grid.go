package grid

// New builds a Grid from a non-empty, rectangular 2D slice.
// The input is deep-copied, so later changes to cells do not affect the Grid.
//
// Errors:
//   - ErrEmptyGrid if cells has no rows or no columns.
//   - ErrNonRectangular if any row length differs.
//
// Complexity: O(W×H) time and memory.
func New(cells [][]int, opts Options) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cp := make([][]int, h)
	for y := range cp {
		cp[y] = make([]int, w)
		copy(cp[y], cells[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		Width:     w,
		Height:    h,
		cells:     cp,
		threshold: opts.LandThreshold,
		offsets:   offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Value returns the stored value at (x,y). It panics when out of bounds,
// like a slice index.
func (g *Grid) Value(x, y int) int {
	return g.cells[y][x]
}

// IsLand reports whether the cell at (x,y) reaches the land threshold.
func (g *Grid) IsLand(x, y int) bool {
	return g.cells[y][x] >= g.threshold
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
