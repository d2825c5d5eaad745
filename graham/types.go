package graham

import (
	"errors"

	"github.com/katalvlaran/hull2d/geom"
)

// ErrNonPositiveEpsilon is returned by Compute when the configured
// collinearity tolerance is zero, negative, or not finite.
var ErrNonPositiveEpsilon = errors.New("graham: epsilon must be positive and finite")

// Result holds the outcome of one angular-sweep hull computation.
type Result struct {
	// Hull is the sequence of input indices tracing the hull
	// counter-clockwise, starting at the pivot. Fewer than 3 entries mean
	// degenerate input (a point or a segment); such a result must not be
	// treated as a closed polygon.
	Hull []int

	// Iterations counts the primitive geometry comparisons performed:
	// pivot-scan comparisons, angular-sort cross products, collinear-run
	// cross products, and stack orientation tests.
	Iterations int64
}

// Options configures the angular sweep.
//
//   - Epsilon: cross products and orientation values with magnitude below
//     Epsilon are treated as collinear. Defaults to geom.Epsilon. Must be
//     identical to the tolerance handed to the brute-force algorithm when
//     the two results are meant to be compared.
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

// WithEpsilon overrides the collinearity tolerance. The value must be
// positive and finite; Compute rejects anything else with
// ErrNonPositiveEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}
