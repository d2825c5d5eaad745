package brute

import (
	"errors"

	"github.com/katalvlaran/hull2d/geom"
)

// ErrNonPositiveEpsilon is returned by Compute when the configured
// side-classification tolerance is zero, negative, or not finite.
var ErrNonPositiveEpsilon = errors.New("brute: epsilon must be positive and finite")

// Result holds the outcome of one brute-force hull computation.
type Result struct {
	// Hull is the sequence of input indices ordered counter-clockwise by
	// angle around the vertex centroid. Fewer than 3 entries mean
	// degenerate input; such a result must not be treated as a closed
	// polygon.
	Hull []int

	// Iterations counts every orientation evaluation performed by the
	// pairwise edge test, the O(n³) dominant cost. Early exits make the
	// count input-shape dependent but fully deterministic.
	Iterations int64
}

// Options configures the edge test.
//
//   - Epsilon: orientation values within (−Epsilon, Epsilon) count as
//     collinear and belong to neither side of an edge candidate. Defaults
//     to geom.Epsilon and must match the tolerance of the angular sweep
//     whenever the two results are meant to be compared.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the canonical configuration: the shared
// geom.Epsilon collinearity tolerance.
func DefaultOptions() Options {
	return Options{Epsilon: geom.Epsilon}
}

// Option is a functional option for configuring Compute.
type Option func(*Options)

// WithEpsilon overrides the side-classification tolerance. The value must
// be positive and finite; Compute rejects anything else with
// ErrNonPositiveEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}
