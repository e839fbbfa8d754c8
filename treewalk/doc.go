// Package treewalk provides iterative, recursion-free depth-first
// traversal of binary trees with selectable visit order.
//
// What
//
//   - Walk(root, opts...) visits every node reachable from root using an
//     explicit frame stack instead of call recursion.
//   - Three orders via WithOrder: PreOrder (node, left, right), InOrder
//     (left, node, right), PostOrder (left, right, node).
//   - WithMaxDepth prunes whole subtrees below a level (root is depth 0).
//   - WithOnVisit installs a per-node hook; a returned error aborts.
//   - Cancellation via WithContext, checked once per frame.
//
// Why
//
//   - Recursive traversal ties maximum tree depth to goroutine stack
//     growth. When depth is attacker-controlled or simply unknown — a
//     degenerate chain, a parsed expression tree — an explicit stack keeps
//     the failure mode at worst an allocation, never a stack overflow.
//   - InOrder over a binary search tree yields values in sorted order,
//     which the tests use as a correctness oracle.
//
// Complexity (n = nodes, d = deepest level explored)
//
//   - Time:   O(n)
//   - Memory: O(d) frames on the explicit stack (O(n) for a degenerate
//     chain; O(log n) for a balanced tree)
//
// Usage
//
//	res, err := treewalk.Walk(
//	    root,
//	    treewalk.WithOrder(treewalk.InOrder),
//	    treewalk.WithMaxDepth(10),
//	    treewalk.WithOnVisit(func(v int64, depth int) error { return nil }),
//	)
//	if err != nil {
//	    // handle ErrNilRoot, ErrOptionViolation, ctx error, or hook error
//	}
//	fmt.Println(res.Order, res.Visited, res.MaxDepth)
//
// Options
//
//   - DefaultOptions(): background Context, PreOrder, no depth limit, no hook.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithOrder(o):      choose PreOrder, InOrder, or PostOrder.
//   - WithMaxDepth(d):   visit only nodes at depth ≤ d (-1 = no limit).
//   - WithOnVisit(fn):   per-node hook; returning an error aborts the walk.
//
// Errors
//
//   - ErrNilRoot          if root is nil.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - The context error, wrapped, if the walk is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package treewalk
