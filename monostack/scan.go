// Package monostack implements linear-time monotonic-stack scans:
// for every position of a sequence, the nearest following (or preceding)
// index whose value satisfies a strict ordering relation.
package monostack

import "fmt"

// scanner encapsulates mutable state for a single scan execution.
type scanner struct {
	seq   []int64     // input sequence; read-only within Scan
	opts  ScanOptions // resolved options
	rel   Relation    // effective qualification predicate
	stack []int       // working stack of unresolved indices
	res   []int       // result; res[k] = resolving index or None
}

// Scan computes, for every index i of seq, the nearest qualifying index
// on the variant's side (j > i for Next*, j < i for Prev*), or None.
//
// The working stack is local to the call: Scan is a pure function of its
// inputs and is safe to run concurrently over separate sequences.
//
// Returns ErrOptionViolation for invalid options, the context error if the
// supplied context is cancelled mid-scan, and otherwise never fails: an
// empty sequence yields an empty result.
//
// Complexity: O(n) time — each index is pushed exactly once and popped at
// most once. O(n) memory for the result and the worst-case stack.
func Scan(seq []int64, opts ...Option) ([]int, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(seq)
	res := make([]int, n)
	for i := range res {
		res[i] = None
	}
	if n == 0 {
		return res, nil
	}

	rel := o.Relation
	if rel == nil {
		rel = builtinRelation(o.Variant)
	}

	s := &scanner{
		seq:   seq,
		opts:  o,
		rel:   rel,
		stack: make([]int, 0, n),
		res:   res,
	}

	var err error
	switch o.Variant {
	case PrevGreater, PrevSmaller:
		err = s.run(n-1, -1, -1)
	default:
		err = s.run(0, n, +1)
	}
	if err != nil {
		return nil, err
	}

	// Indices left on the stack have no qualifying partner; their
	// result entries stay None.
	return s.res, nil
}

// run walks indices from first (inclusive) to last (exclusive) in steps of
// dir, popping every stacked index the current element resolves, then
// pushing the current index.
//
// Invariant: between iterations the values at stacked indices, read bottom
// to top, never satisfy rel(deeper, shallower) for adjacent pairs — the
// stack is monotonic with respect to the negation of rel. This is what
// guarantees each pop records the *nearest* qualifying index, not merely
// some qualifying one.
func (s *scanner) run(first, last, dir int) error {
	for i := first; i != last; i += dir {
		// cancellation check (once per element)
		select {
		case <-s.opts.Ctx.Done():
			return fmt.Errorf("monostack: scan aborted: %w", s.opts.Ctx.Err())
		default:
		}

		for len(s.stack) > 0 && s.rel(s.seq[s.top()], s.seq[i]) {
			s.pop(i)
		}
		s.push(i)
	}

	return nil
}

// top returns the index on top of the working stack.
func (s *scanner) top() int {
	return s.stack[len(s.stack)-1]
}

// pop resolves the top index with answer j and invokes OnPop.
func (s *scanner) pop(j int) {
	k := s.top()
	s.stack = s.stack[:len(s.stack)-1]
	s.res[k] = j
	s.opts.OnPop(k, j)
}

// push places index i on the working stack and invokes OnPush.
func (s *scanner) push(i int) {
	s.stack = append(s.stack, i)
	s.opts.OnPush(i)
}

// NextGreaterIndices returns, for each index, the nearest later index
// holding a strictly greater value, or None.
func NextGreaterIndices(seq []int64, opts ...Option) ([]int, error) {
	return Scan(seq, append(opts, WithVariant(NextGreater))...)
}

// NextSmallerIndices returns, for each index, the nearest later index
// holding a strictly smaller value, or None.
func NextSmallerIndices(seq []int64, opts ...Option) ([]int, error) {
	return Scan(seq, append(opts, WithVariant(NextSmaller))...)
}

// PrevGreaterIndices returns, for each index, the nearest earlier index
// holding a strictly greater value, or None.
func PrevGreaterIndices(seq []int64, opts ...Option) ([]int, error) {
	return Scan(seq, append(opts, WithVariant(PrevGreater))...)
}

// PrevSmallerIndices returns, for each index, the nearest earlier index
// holding a strictly smaller value, or None.
func PrevSmallerIndices(seq []int64, opts ...Option) ([]int, error) {
	return Scan(seq, append(opts, WithVariant(PrevSmaller))...)
}
