// Package gridscan defines core types, options, and sentinel errors for
// component analysis over rectangular 2D grids.
package gridscan

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and analysis.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridscan: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridscan: all rows must have the same length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridscan: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord is a grid position: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// Option configures grid analysis via functional arguments.
type Option func(*GridOptions)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥ 1 are land), Conn=Conn4.
func DefaultOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		err:           nil,
	}
}

// WithConnectivity selects 4- or 8-directional adjacency. Other values are
// invalid and surface as ErrOptionViolation when New runs.
func WithConnectivity(c Connectivity) Option {
	return func(o *GridOptions) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: connectivity(%d)", ErrOptionViolation, int(c))

			return
		}
		o.Conn = c
	}
}

// WithLandThreshold sets the minimum cell value treated as land.
func WithLandThreshold(t int) Option {
	return func(o *GridOptions) {
		o.LandThreshold = t
	}
}
