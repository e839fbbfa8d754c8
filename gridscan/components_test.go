package gridscan_test

import (
	"testing"

	"github.com/katalvlaran/seqscan/gridscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMap is the shared fixture: five islands under Conn4, three under
// Conn8 (the bottom-right cells touch the middle island diagonally).
//
//	1 1 0 0 0
//	1 1 0 0 1
//	0 0 0 1 1
//	0 0 0 1 0
//	1 0 1 0 1
func testMap() [][]int {
	return [][]int{
		{1, 1, 0, 0, 0},
		{1, 1, 0, 0, 1},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 1, 0},
		{1, 0, 1, 0, 1},
	}
}

// TestNew_Validation rejects empty and ragged grids.
func TestNew_Validation(t *testing.T) {
	_, err := gridscan.New([][]int{})
	assert.ErrorIs(t, err, gridscan.ErrEmptyGrid)

	_, err = gridscan.New([][]int{{}})
	assert.ErrorIs(t, err, gridscan.ErrEmptyGrid)

	_, err = gridscan.New([][]int{{1, 0}, {1}})
	assert.ErrorIs(t, err, gridscan.ErrNonRectangular)

	_, err = gridscan.New(testMap(), gridscan.WithConnectivity(gridscan.Connectivity(7)))
	assert.ErrorIs(t, err, gridscan.ErrOptionViolation)
}

// TestCountIslands_Conn4 counts orthogonally connected regions.
func TestCountIslands_Conn4(t *testing.T) {
	g, err := gridscan.New(testMap())
	require.NoError(t, err)
	assert.Equal(t, 5, g.CountIslands())
}

// TestCountIslands_Conn8 merges diagonal neighbors into one region.
func TestCountIslands_Conn8(t *testing.T) {
	g, err := gridscan.New(testMap(), gridscan.WithConnectivity(gridscan.Conn8))
	require.NoError(t, err)
	assert.Equal(t, 3, g.CountIslands())
}

// TestComponents_CellMembership verifies coordinates and emission order.
func TestComponents_CellMembership(t *testing.T) {
	g, err := gridscan.New([][]int{
		{1, 0, 1},
		{1, 0, 0},
	})
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []gridscan.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}}, comps[0])
	assert.Equal(t, []gridscan.Coord{{X: 2, Y: 0}}, comps[1])
}

// TestComponents_AgreesWithCount checks both entry points agree.
func TestComponents_AgreesWithCount(t *testing.T) {
	g, err := gridscan.New(testMap(), gridscan.WithConnectivity(gridscan.Conn8))
	require.NoError(t, err)
	assert.Len(t, g.Components(), g.CountIslands())
}

// TestLandThreshold treats low-valued cells as water.
func TestLandThreshold(t *testing.T) {
	values := [][]int{
		{3, 1, 0},
		{3, 0, 2},
	}

	g, err := gridscan.New(values, gridscan.WithLandThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 2, g.CountIslands(), "only cells >= 2 are land")

	g, err = gridscan.New(values, gridscan.WithLandThreshold(1))
	require.NoError(t, err)
	assert.Equal(t, 2, g.CountIslands(), "the 1-cell joins the 3s island")
}

// TestInputNotMutated proves analysis never writes to the caller's grid,
// even across repeated runs.
func TestInputNotMutated(t *testing.T) {
	values := testMap()
	backup := make([][]int, len(values))
	for i, row := range values {
		backup[i] = append([]int(nil), row...)
	}

	g, err := gridscan.New(values)
	require.NoError(t, err)
	_ = g.Components()
	_ = g.CountIslands()
	_ = g.Components()

	assert.Equal(t, backup, values, "caller's grid must stay untouched")
}

// TestAllWater finds nothing on a land-free grid.
func TestAllWater(t *testing.T) {
	g, err := gridscan.New([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, g.CountIslands())
	assert.Empty(t, g.Components())
}

// TestSingleCellLand finds one island on a 1×1 land grid.
func TestSingleCellLand(t *testing.T) {
	g, err := gridscan.New([][]int{{1}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.CountIslands())
}
