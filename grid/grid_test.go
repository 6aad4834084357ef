package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkata/grid"
)

//---// New, InBounds, Coordinate //---//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		err   error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells, grid.DefaultOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_DeepCopy(t *testing.T) {
	cells := [][]int{{1, 0}, {0, 1}}
	g, err := grid.New(cells, grid.DefaultOptions())
	require.NoError(t, err)
	cells[0][0] = 0
	assert.Equal(t, 1, g.Value(0, 0))
	assert.True(t, g.IsLand(0, 0))
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
}

func TestInBoundsAndCoordinate(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 0}, {1, 0, 1}}, grid.DefaultOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "%v", xy)
	}

	x, y := g.Coordinate(5)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
}

//---// Islands //---//

func TestIslands_Conn4(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 1, 0, 0, 0},
		{1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
	}, grid.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 5}, {8, 9, 14}, {16}}, g.Islands())
}

func TestIslands_Diagonal(t *testing.T) {
	cells := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	g4, err := grid.New(cells, grid.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, g4.Islands(), 9)

	g8, err := grid.New(cells, grid.Options{LandThreshold: 1, Conn: grid.Conn8})
	require.NoError(t, err)
	islands := g8.Islands()
	require.Len(t, islands, 1)
	assert.Len(t, islands[0], 9)
}

func TestIslands_Threshold(t *testing.T) {
	cells := [][]int{{1, 5, 2}, {7, 0, 9}}

	g, err := grid.New(cells, grid.Options{LandThreshold: 5, Conn: grid.Conn4})
	require.NoError(t, err)
	assert.Len(t, g.Islands(), 3)

	g, err = grid.New(cells, grid.Options{LandThreshold: 5, Conn: grid.Conn8})
	require.NoError(t, err)
	assert.Len(t, g.Islands(), 1)
}

func TestIslands_AllWater(t *testing.T) {
	g, err := grid.New([][]int{{0, 0}, {0, 0}}, grid.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, g.Islands())
}

func TestNumIslands(t *testing.T) {
	one := [][]byte{
		[]byte("11110"),
		[]byte("11010"),
		[]byte("11000"),
		[]byte("00000"),
	}
	three := [][]byte{
		[]byte("11000"),
		[]byte("11000"),
		[]byte("00100"),
		[]byte("00011"),
	}
	assert.Equal(t, 1, grid.NumIslands(one))
	assert.Equal(t, 3, grid.NumIslands(three))
	assert.Equal(t, 0, grid.NumIslands(nil))
	assert.Equal(t, 2, grid.NumIslands([][]byte{[]byte("101"), []byte("1")}))
}

func TestMaxAreaOfIsland(t *testing.T) {
	assert.Equal(t, 3, grid.MaxAreaOfIsland([][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 1}}))
	assert.Equal(t, 0, grid.MaxAreaOfIsland([][]int{{0, 0, 0}}))
	assert.Equal(t, 0, grid.MaxAreaOfIsland(nil))
}

//---// Bridge //---//

func TestBridge_Line(t *testing.T) {
	g, err := grid.New([][]int{{1, 0, 1}}, grid.DefaultOptions())
	require.NoError(t, err)

	path, cost, err := g.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []int{0, 1, 2}, path)

	g, err = grid.New([][]int{{1, 0, 0, 0, 1}}, grid.DefaultOptions())
	require.NoError(t, err)
	path, cost, err = g.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

func TestBridge_CrossesIntermediateIsland(t *testing.T) {
	g, err := grid.New([][]int{{1, 0, 1, 0, 1}}, grid.DefaultOptions())
	require.NoError(t, err)

	path, cost, err := g.Bridge(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
}

func TestBridge_SameIsland(t *testing.T) {
	g, err := grid.New([][]int{{1, 1}}, grid.DefaultOptions())
	require.NoError(t, err)

	path, cost, err := g.Bridge(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Len(t, path, 1)
}

func TestBridge_BadIndex(t *testing.T) {
	g, err := grid.New([][]int{{1, 0, 1}}, grid.DefaultOptions())
	require.NoError(t, err)

	_, _, err = g.Bridge(0, 2)
	assert.ErrorIs(t, err, grid.ErrComponentIndex)
	_, _, err = g.Bridge(-1, 0)
	assert.ErrorIs(t, err, grid.ErrComponentIndex)
}

func TestShortestBridge(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
		want  int
	}{
		{"Diagonal", [][]int{{0, 1}, {1, 0}}, 1},
		{"Corners", [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 1}}, 2},
		{"Ring", [][]int{
			{1, 1, 1, 1, 1},
			{1, 0, 0, 0, 1},
			{1, 0, 1, 0, 1},
			{1, 0, 0, 0, 1},
			{1, 1, 1, 1, 1},
		}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := grid.ShortestBridge(tc.cells)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := grid.ShortestBridge([][]int{{1, 1}})
	assert.ErrorIs(t, err, grid.ErrIslandCount)
	_, err = grid.ShortestBridge(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}
