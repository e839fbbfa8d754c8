// Package topk provides a fixed-capacity priority container for streaming
// "top-K" selection, backed by container/heap.
//
// What
//
//   - TopK keeps the k largest values offered to it (or the k smallest,
//     with WithSmallest), evicting the weakest keeper on overflow.
//   - Offer(v) costs O(log k); memory never exceeds O(k) regardless of
//     stream length.
//   - One-shot wrappers Largest(seq, k) and Smallest(seq, k) fold a whole
//     slice through a container.
//
// Why
//
//   - "k largest elements", "k closest points", "top frequencies" all share
//     this shape: a bounded heap whose root is the weakest keeper, so that
//     admission is a single root comparison.
//   - Heap index arithmetic (parent ⌊(i−1)/2⌋, children 2i+1, 2i+2) lives
//     in container/heap; this package only supplies the ordering.
//
// Ordering
//
//	Values() and Drain() return keepers best-first: descending for the
//	largest-keeping container, ascending for the smallest-keeping one.
//	Duplicates are kept independently; offering the same value k times
//	fills the container with it.
//
// Complexity (n = values offered, k = capacity)
//
//   - Offer:  O(log k)
//   - Values: O(k log k), container untouched
//   - Drain:  O(k log k), container emptied
//   - Whole stream: O(n log k) time, O(k) memory
//
// Usage
//
//	t, err := topk.New(3)
//	if err != nil {
//	    // handle ErrBadCapacity
//	}
//	for _, v := range stream {
//	    t.Offer(v)
//	}
//	best := t.Values() // 3 largest, descending
//
// Errors
//
//   - ErrBadCapacity  if the requested capacity is not positive.
package topk
