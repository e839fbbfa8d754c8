// Package gridscan identifies connected components ("islands") on
// rectangular 2D integer grids without ever mutating the input.
//
// What
//
//   - Grid wraps a rectangular [][]int with a tunable LandThreshold.
//   - Components() lists each contiguous land region as its member
//     coordinates; CountIslands() returns just the count.
//   - Connectivity is selectable: Conn4 (orthogonal) or Conn8 (diagonals too).
//
// Why
//
//   - "Number of Islands"-style analysis: game maps, bitmap regions,
//     occupancy grids.
//   - Many textbook renditions sink visited land by writing zeros into the
//     caller's grid. gridscan instead tracks visitation in a separate
//     row-major visited set and deep-copies the input up front, trading
//     O(W×H) memory for full input immutability.
//
// Determinism
//
//	Components are emitted in row-major order of their first cell, and
//	cells within a component in BFS discovery order, so repeated runs over
//	the same grid produce identical output.
//
// Complexity (W×H cells, d = 4 or 8 neighbors)
//
//   - Components / CountIslands: O(W×H×d) time, O(W×H) memory.
//
// Usage
//
//	g, err := gridscan.New(
//	    values,
//	    gridscan.WithConnectivity(gridscan.Conn8),
//	    gridscan.WithLandThreshold(1),
//	)
//	if err != nil {
//	    // handle ErrEmptyGrid, ErrNonRectangular, or ErrOptionViolation
//	}
//	fmt.Println(g.CountIslands())
//
// Options
//
//   - DefaultOptions(): LandThreshold=1, Conn4.
//   - WithConnectivity(c): Conn4 or Conn8.
//   - WithLandThreshold(t): minimum cell value counted as land.
//
// Errors
//
//   - ErrEmptyGrid        input grid has no rows or no columns.
//   - ErrNonRectangular   rows have differing lengths.
//   - ErrOptionViolation  invalid Option (unknown connectivity).
package gridscan
