// Package monostack provides a production-grade monotonic-stack scan over
// integer sequences, returning for every position the nearest index (ahead
// or behind) whose value satisfies a strict ordering relation.
//
// What
//
//   - Scan(seq, opts...) returns a []int of the same length as seq; entry i
//     is the nearest qualifying index on the variant's side, or None (-1).
//   - Four builtin variants: NextGreater, NextSmaller, PrevGreater,
//     PrevSmaller — selectable via WithVariant or the convenience wrappers
//     NextGreaterIndices, NextSmallerIndices, PrevGreaterIndices,
//     PrevSmallerIndices.
//   - WithRelation swaps in a custom strict predicate while keeping the
//     variant's direction.
//   - Hooks at both stack transitions: OnPush(i) and OnPop(k, j).
//   - Derived views: Distances (index deltas) and Values (qualifying values).
//
// Why
//
//   - "Daily Temperatures", "Next Greater Element", stock-span, histogram
//     problems all reduce to this one kernel.
//   - Answers are always the *nearest* qualifying index, never an arbitrary
//     one: indices are resolved strictly in the order they are popped.
//
// Determinism
//
//	The scan is a pure function of (seq, variant, relation). Running it
//	twice over the same input yields identical output, and separate calls
//	share no state, so concurrent scans over separate sequences need no
//	coordination.
//
// The Working Stack
//
//	The stack holds indices whose answer is not yet known. Between steps
//	the stacked values, read bottom to top, are monotonic with respect to
//	the negation of the relation; a new element that violates that order
//	resolves (pops) every index it qualifies for before being pushed.
//	The stack lives and dies inside the call.
//
// Complexity (n = len(seq))
//
//   - Time:   O(n)   (each index pushed exactly once, popped at most once;
//     total stack operations never exceed 2n)
//   - Memory: O(n)   (result slice plus worst-case stack, e.g. a strictly
//     decreasing input under NextGreater never pops)
//
// Usage
//
//	// Basic next-greater scan:
//	idx, err := monostack.Scan([]int64{73, 74, 75, 71, 69, 72, 76, 73})
//	if err != nil {
//	    // handle ErrOptionViolation or a cancelled context
//	}
//	// idx == [1 2 6 5 5 6 -1 -1]
//
//	// With functional options:
//	idx, err = monostack.Scan(
//	    seq,
//	    monostack.WithContext(ctx),
//	    monostack.WithVariant(monostack.PrevSmaller),
//	    monostack.WithOnPop(func(k, j int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, NextGreater variant, no-op hooks.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithVariant(v):     choose direction and builtin relation.
//   - WithRelation(fn):   custom strict predicate (direction kept).
//   - WithOnPush(fn):     hook when an index enters the working stack.
//   - WithOnPop(fn):      hook when index k is resolved by index j.
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option (out-of-range Variant) is supplied.
//   - ErrUnknownVariant   from ParseVariant for unknown selector strings.
//   - The context error, wrapped, if the scan is cancelled mid-flight.
//
// Supplying a predicate that is not a strict order is a contract violation:
// the scan still terminates in O(n), but the result is unspecified.
package monostack
