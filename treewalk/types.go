// Package treewalk defines types and options for iterative depth-first
// binary-tree traversal, including cancellation, visit hooks, order
// selection, and depth limiting.
package treewalk

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilRoot is returned when a nil root node is passed to Walk.
	ErrNilRoot = errors.New("treewalk: root node is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("treewalk: invalid option supplied")
)

// Node is a binary tree node. Children may be nil.
type Node struct {
	Value int64
	Left  *Node
	Right *Node
}

// TraversalOrder selects when a node is visited relative to its subtrees.
type TraversalOrder int

const (
	// PreOrder visits a node before either subtree.
	PreOrder TraversalOrder = iota
	// InOrder visits a node between its left and right subtrees.
	// On a binary search tree this yields values in sorted order.
	InOrder
	// PostOrder visits a node after both subtrees.
	PostOrder
)

// String returns a human-readable name for the traversal order.
func (o TraversalOrder) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Option configures optional behavior of Walk.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for a traversal.
type WalkOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Order selects pre-, in-, or post-order. Default PreOrder.
	Order TraversalOrder

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// OnVisit, if non-nil, is invoked as each node is visited.
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int64, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a WalkOptions struct with:
//   - Background context
//   - PreOrder traversal
//   - No depth limit (MaxDepth = -1)
//   - No visit hook
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		Order:    PreOrder,
		MaxDepth: -1,
		OnVisit:  nil,
		err:      nil,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the traversal order. Out-of-range values are invalid
// and surface as ErrOptionViolation when Walk runs.
func WithOrder(order TraversalOrder) Option {
	return func(o *WalkOptions) {
		if order < PreOrder || order > PostOrder {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, order)

			return
		}
		o.Order = order
	}
}

// WithMaxDepth limits traversal to the given depth (root is depth 0).
//
//	d >= 0: visit nodes at depth <= d
//	d == -1: explicit no depth limit
//	d < -1: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be below -1 (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs fn as the visit hook; returning an error from fn
// aborts the traversal.
func WithOnVisit(fn func(v int64, depth int) error) Option {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order records node values in visit sequence.
	Order []int64

	// Visited counts visited nodes (== len(Order)).
	Visited int

	// MaxDepth is the deepest level actually visited (root = 0);
	// -1 when nothing was visited.
	MaxDepth int
}
