// Package monostack defines tunable options, variants, and error
// definitions for monotonic-stack scans over integer sequences.
package monostack

import (
	"context"
	"errors"
	"fmt"
)

// None is the sentinel result entry meaning "no qualifying element exists".
const None = -1

// Sentinel errors for scan execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("monostack: invalid option supplied")

	// ErrUnknownVariant is returned by ParseVariant for an unrecognized
	// variant selector string.
	ErrUnknownVariant = errors.New("monostack: unknown variant selector")
)

// Variant selects the scan direction and the builtin ordering relation.
//
//   - NextGreater  — nearest j > i with seq[j] > seq[i].
//   - NextSmaller  — nearest j > i with seq[j] < seq[i].
//   - PrevGreater  — nearest j < i with seq[j] > seq[i].
//   - PrevSmaller  — nearest j < i with seq[j] < seq[i].
type Variant int

const (
	// NextGreater finds, for each index, the nearest later strictly greater element.
	NextGreater Variant = iota
	// NextSmaller finds, for each index, the nearest later strictly smaller element.
	NextSmaller
	// PrevGreater finds, for each index, the nearest earlier strictly greater element.
	PrevGreater
	// PrevSmaller finds, for each index, the nearest earlier strictly smaller element.
	PrevSmaller
)

// variantNames maps each Variant to its canonical selector string,
// as accepted by ParseVariant and the seqscan CLI.
var variantNames = map[Variant]string{
	NextGreater: "next-greater",
	NextSmaller: "next-smaller",
	PrevGreater: "previous-greater",
	PrevSmaller: "previous-smaller",
}

// String returns the canonical selector string for v,
// or "variant(<n>)" for out-of-range values.
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}

	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a selector string to its Variant.
// Accepted selectors: "next-greater", "next-smaller",
// "previous-greater", "previous-smaller".
// Returns ErrUnknownVariant (wrapped with the offending selector) otherwise.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Relation reports whether candidate qualifies as the answer for cur.
// It must behave as a strict, order-compatible predicate (irreflexive,
// anti-symmetric); Scan does not validate this and the result is
// unspecified for predicates that are not.
type Relation func(cur, candidate int64) bool

// builtinRelation returns the Relation implied by a Variant.
func builtinRelation(v Variant) Relation {
	switch v {
	case NextSmaller, PrevSmaller:
		return func(cur, candidate int64) bool { return candidate < cur }
	default:
		return func(cur, candidate int64) bool { return candidate > cur }
	}
}

// Option configures scan behavior via functional arguments.
// If an Option is invalid (e.g. an out-of-range Variant), it is recorded
// internally and surfaced as ErrOptionViolation when Scan is invoked.
type Option func(*ScanOptions)

// ScanOptions holds parameters and callbacks to customize a scan.
type ScanOptions struct {
	// Ctx allows cancellation of very long scans; checked once per element.
	Ctx context.Context

	// Variant selects direction and builtin relation. Default NextGreater.
	Variant Variant

	// Relation, if non-nil, overrides the Variant's builtin predicate.
	// The Variant still controls scan direction (Next* vs Prev*).
	Relation Relation

	// OnPush is called when index i is pushed onto the working stack.
	OnPush func(i int)

	// OnPop is called when index k is popped because index j resolved it.
	OnPop func(k, j int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a ScanOptions with sane defaults:
//   - Context.Background()
//   - Variant NextGreater with its builtin relation
//   - no-op hooks (OnPush, OnPop)
func DefaultOptions() ScanOptions {
	return ScanOptions{
		Ctx:      context.Background(),
		Variant:  NextGreater,
		Relation: nil,
		OnPush:   func(int) {},
		OnPop:    func(int, int) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *ScanOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVariant selects the scan variant. Out-of-range values are invalid
// and surface as ErrOptionViolation when Scan runs.
func WithVariant(v Variant) Option {
	return func(o *ScanOptions) {
		if _, ok := variantNames[v]; !ok {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, v)

			return
		}
		o.Variant = v
	}
}

// WithRelation overrides the builtin predicate with fn.
// The Variant still chooses the direction; fn decides qualification.
// A nil fn has no effect (the builtin relation is retained).
func WithRelation(fn Relation) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.Relation = fn
		}
	}
}

// WithOnPush registers a callback to run when an index is pushed.
func WithOnPush(fn func(i int)) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback to run when index k is resolved by index j.
func WithOnPop(fn func(k, j int)) Option {
	return func(o *ScanOptions) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}
