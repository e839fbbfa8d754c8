// Package gridscan treats a rectangular 2D grid of integer cell values as
// an implicit graph for connected-component ("island") analysis. Cells with
// value < LandThreshold are "water"; cells with value ≥ LandThreshold are
// "land". The caller's grid is deep-copied at construction and never
// written to afterwards.
package gridscan

// Grid wraps a rectangular [][]int for component analysis.
// It is immutable once built: CellValues is a private deep copy, and all
// visitation state lives in a per-call visited set, never in the cells.
type Grid struct {
	width, height int
	cells         [][]int
	conn          Connectivity
	landThreshold int
	offsets       [][2]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutations by the caller cannot skew
// analysis, and analysis can never corrupt the caller's data.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrOptionViolation for invalid options.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to keep the caller's grid and ours independent.
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// Precompute neighbor offsets based on connectivity.
	var offsets [][2]int
	if o.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		width:         w,
		height:        h,
		cells:         cells,
		conn:          o.Conn,
		landThreshold: o.LandThreshold,
		offsets:       offsets,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsLand reports whether the cell at (x,y) meets the land threshold.
// Out-of-bounds positions are water.
func (g *Grid) IsLand(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] >= g.landThreshold
}

// index flattens (x,y) to a row-major cell index.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// coordinate expands a row-major cell index back to (x,y).
func (g *Grid) coordinate(idx int) (int, int) {
	return idx % g.width, idx / g.width
}
