package solve

import (
	"errors"

	"github.com/katalvlaran/hull2d/geom"
)

// ErrNonPositiveEpsilon is returned by RunBoth when the configured
// collinearity tolerance is zero, negative, or not finite.
var ErrNonPositiveEpsilon = errors.New("solve: epsilon must be positive and finite")

// ErrNilPointSet is returned by RunBothSet when the point set is nil.
var ErrNilPointSet = errors.New("solve: point set is nil")

// Result holds the outcome of one run of both algorithms. Both hulls are
// index sequences into the same input; the two counters measure different
// units of work and are comparable only as cost metrics.
type Result struct {
	// FastHull is the angular sweep's hull, counter-clockwise from the
	// pivot.
	FastHull []int
	// FastIterations counts the sweep's primitive comparisons.
	FastIterations int64

	// SlowHull is the edge test's hull, counter-clockwise by centroid
	// angle.
	SlowHull []int
	// SlowIterations counts the edge test's orientation evaluations.
	SlowIterations int64
}

// Agree reports whether the two hulls contain the same set of vertex
// indices, regardless of starting point or traversal order. For
// non-degenerate input (no three collinear boundary points) the sets
// must match; degenerate input may legitimately disagree.
func (r Result) Agree() bool {
	if len(r.FastHull) != len(r.SlowHull) {
		return false
	}

	fast := make(map[int]struct{}, len(r.FastHull))
	for _, idx := range r.FastHull {
		fast[idx] = struct{}{}
	}
	for _, idx := range r.SlowHull {
		if _, ok := fast[idx]; !ok {
			return false
		}
	}

	return true
}

// Options configures a run of both algorithms.
//
//   - Epsilon: the single collinearity tolerance handed to BOTH
//     algorithms, so their semantics can never drift apart. Defaults to
//     geom.Epsilon.
//   - Parallel: run the two algorithms on separate goroutines. They share
//     only read-only input, so this never changes the Result.
type Options struct {
	Epsilon  float64
	Parallel bool
}

// DefaultOptions returns the canonical configuration: the shared
// geom.Epsilon tolerance, sequential execution.
func DefaultOptions() Options {
	return Options{Epsilon: geom.Epsilon}
}

// Option is a functional option for configuring RunBoth.
type Option func(*Options)

// WithEpsilon overrides the collinearity tolerance for both algorithms at
// once. The value must be positive and finite; RunBoth rejects anything
// else with ErrNonPositiveEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithParallel runs the two algorithms concurrently.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}
