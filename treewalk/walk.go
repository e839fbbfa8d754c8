// Package treewalk implements recursion-free depth-first traversal of
// binary trees using an explicit frame stack, so traversal depth is a
// heap allocation concern, never a call-stack one.
package treewalk

import "fmt"

// frame is one unit of pending traversal work. A frame either still needs
// its children scheduled (visitNow == false) or is ready to be visited.
type frame struct {
	node     *Node
	depth    int
	visitNow bool
}

// walker encapsulates mutable traversal state.
type walker struct {
	opts  WalkOptions
	stack []frame
	res   *Result
}

// Walk traverses the binary tree rooted at root without recursion,
// honoring order selection, depth limiting, cancellation, and the
// OnVisit hook. A skewed million-node chain walks as safely as a
// balanced one.
//
// Returns ErrNilRoot for a nil root, ErrOptionViolation for invalid
// options, the context error on cancellation, or a wrapped hook error.
//
// Complexity: O(n) time; O(d) auxiliary memory where d is the deepest
// level explored (worst case O(n) for a degenerate chain).
func Walk(root *Node, opts ...Option) (*Result, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:  o,
		stack: make([]frame, 0, 64),
		res:   &Result{Order: []int64{}, MaxDepth: -1},
	}
	w.stack = append(w.stack, frame{node: root, depth: 0})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop drains the frame stack until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		// cancellation check (once per frame)
		select {
		case <-w.opts.Ctx.Done():
			return fmt.Errorf("treewalk: walk aborted: %w", w.opts.Ctx.Err())
		default:
		}

		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if f.visitNow {
			if err := w.visit(f); err != nil {
				return err
			}

			continue
		}
		w.expand(f)
	}

	return nil
}

// expand schedules a node's visit and its children in LIFO order so that
// pops occur in the configured traversal order. Children beyond MaxDepth
// are not scheduled.
func (w *walker) expand(f frame) {
	childDepth := f.depth + 1
	withinLimit := w.opts.MaxDepth < 0 || childDepth <= w.opts.MaxDepth

	self := frame{node: f.node, depth: f.depth, visitNow: true}
	left := frame{node: f.node.Left, depth: childDepth}
	right := frame{node: f.node.Right, depth: childDepth}

	// Pushed in reverse of the desired pop order.
	switch w.opts.Order {
	case InOrder:
		w.push(right, withinLimit)
		w.stack = append(w.stack, self)
		w.push(left, withinLimit)
	case PostOrder:
		w.stack = append(w.stack, self)
		w.push(right, withinLimit)
		w.push(left, withinLimit)
	default: // PreOrder
		w.push(right, withinLimit)
		w.push(left, withinLimit)
		w.stack = append(w.stack, self)
	}
}

// push schedules a child frame unless it is nil or depth-limited.
func (w *walker) push(f frame, withinLimit bool) {
	if f.node == nil || !withinLimit {
		return
	}
	w.stack = append(w.stack, f)
}

// visit records the node and invokes the hook.
func (w *walker) visit(f frame) error {
	w.res.Order = append(w.res.Order, f.node.Value)
	w.res.Visited++
	if f.depth > w.res.MaxDepth {
		w.res.MaxDepth = f.depth
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.node.Value, f.depth); err != nil {
			return fmt.Errorf("treewalk: OnVisit hook at value %d: %w", f.node.Value, err)
		}
	}

	return nil
}
