package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrComponentIndex indicates a requested island index is out of range.
	ErrComponentIndex = errors.New("grid: island index out of range")
	// ErrNoPath indicates no conversion path exists between two islands.
	ErrNoPath = errors.New("grid: no path between islands")
	// ErrIslandCount indicates ShortestBridge did not find exactly two islands.
	ErrIslandCount = errors.New("grid: want exactly two islands")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// LandThreshold specifies the minimum cell value considered land.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns LandThreshold=1 (values ≥1 are land) and Conn4.
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// Grid treats a rectangular 2D integer matrix as a graph whose vertices are
// cells and whose edges join neighbouring cells. It is immutable once built;
// cells[y][x] holds the value at column x, row y.
type Grid struct {
	Width, Height int

	cells     [][]int
	threshold int
	offsets   [][2]int
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)
