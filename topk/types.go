// Package topk defines options and error definitions for the bounded
// top-K priority container.
package topk

import "errors"

// Sentinel errors for container construction.
var (
	// ErrBadCapacity is returned when the requested capacity k is not positive.
	ErrBadCapacity = errors.New("topk: capacity must be positive")
)

// Options configures which extreme the container keeps.
type Options struct {
	// Smallest, when true, keeps the k smallest values instead of the k largest.
	Smallest bool
}

// Option represents a functional option for configuring a TopK container.
type Option func(*Options)

// DefaultOptions returns Options keeping the k largest values.
func DefaultOptions() Options {
	return Options{Smallest: false}
}

// WithSmallest flips the container to keep the k smallest values.
func WithSmallest() Option {
	return func(o *Options) {
		o.Smallest = true
	}
}
