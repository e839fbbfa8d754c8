// Package topk implements a fixed-capacity priority container that keeps
// the k most extreme values of a stream, with O(log k) insertion.
package topk

import (
	"container/heap"
	"sort"
)

// keeperHeap is the heap.Interface backing a TopK container.
// Its root is always the weakest of the currently kept values:
// the minimum when keeping the largest, the maximum when keeping the
// smallest. That makes eviction a root comparison plus a Fix.
type keeperHeap struct {
	items    []int64
	smallest bool // true: max-heap of keepers (we keep the k smallest)
}

// Len implements heap.Interface.
func (h *keeperHeap) Len() int { return len(h.items) }

// Less implements heap.Interface; the weakest keeper sits at the root.
func (h *keeperHeap) Less(i, j int) bool {
	if h.smallest {
		return h.items[i] > h.items[j]
	}

	return h.items[i] < h.items[j]
}

// Swap implements heap.Interface.
func (h *keeperHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push implements heap.Interface.
func (h *keeperHeap) Push(x interface{}) { h.items = append(h.items, x.(int64)) }

// Pop implements heap.Interface.
func (h *keeperHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]

	return v
}

// TopK keeps the k largest (or, with WithSmallest, the k smallest) values
// offered to it. Zero coordination is built in: a TopK instance belongs to
// one goroutine at a time.
type TopK struct {
	k int
	h keeperHeap
}

// New constructs a TopK container of capacity k.
// Returns ErrBadCapacity if k <= 0.
// Complexity: O(1) time, O(k) memory reserved up front.
func New(k int, opts ...Option) (*TopK, error) {
	if k <= 0 {
		return nil, ErrBadCapacity
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &TopK{
		k: k,
		h: keeperHeap{items: make([]int64, 0, k), smallest: o.Smallest},
	}, nil
}

// Offer considers v for the kept set. While fewer than k values are held,
// v is always kept; afterwards v replaces the weakest keeper only when it
// beats it. Complexity: O(log k).
func (t *TopK) Offer(v int64) {
	if t.h.Len() < t.k {
		heap.Push(&t.h, v)

		return
	}
	root := t.h.items[0]
	if (t.h.smallest && v < root) || (!t.h.smallest && v > root) {
		t.h.items[0] = v
		heap.Fix(&t.h, 0)
	}
}

// Len reports how many values are currently kept (0..k).
func (t *TopK) Len() int { return t.h.Len() }

// Values returns the kept values ordered best-first (descending when
// keeping the largest, ascending when keeping the smallest) without
// disturbing the container. Complexity: O(k log k).
func (t *TopK) Values() []int64 {
	out := make([]int64, len(t.h.items))
	copy(out, t.h.items)
	if t.h.smallest {
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	}

	return out
}

// Drain empties the container, returning the kept values best-first.
// Complexity: O(k log k).
func (t *TopK) Drain() []int64 {
	out := make([]int64, 0, t.h.Len())
	for t.h.Len() > 0 {
		out = append(out, heap.Pop(&t.h).(int64))
	}
	// heap.Pop yields weakest-first; reverse to best-first.
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// Largest returns the k largest values of seq, best-first.
// When len(seq) < k, all values are returned.
// Returns ErrBadCapacity if k <= 0.
// Complexity: O(n log k) time, O(k) memory.
func Largest(seq []int64, k int, opts ...Option) ([]int64, error) {
	t, err := New(k, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range seq {
		t.Offer(v)
	}

	return t.Drain(), nil
}

// Smallest returns the k smallest values of seq, best-first (ascending).
// When len(seq) < k, all values are returned.
// Returns ErrBadCapacity if k <= 0.
// Complexity: O(n log k) time, O(k) memory.
func Smallest(seq []int64, k int, opts ...Option) ([]int64, error) {
	return Largest(seq, k, append(opts, WithSmallest())...)
}
