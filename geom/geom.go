package geom

import (
	"math"

	"github.com/quasilyte/gmath"
)

// Point is a 2D coordinate pair. The identity of a point within a hull
// computation is its index in the input slice, never its value: duplicate
// coordinates at different indices are distinct points.
type Point = gmath.Vec

// Epsilon is the collinearity tolerance shared by all hull algorithms.
// Cross products and orientation values with magnitude below Epsilon are
// treated as collinear. It is a single named constant so both algorithms
// stay mutually consistent and tests can probe boundary behavior.
const Epsilon = 1e-9

// Orientation returns twice the signed area of the triangle o→a→b.
// Positive means a counter-clockwise (left) turn at a, negative means
// clockwise; magnitude below Epsilon should be read as collinear.
//
// Complexity: O(1)
func Orientation(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Cross returns the 2D cross product u×v of two vectors.
//
// Complexity: O(1)
func Cross(u, v Point) float64 {
	return u.X*v.Y - u.Y*v.X
}

// Dist2 returns the squared distance between a and b. No square root is
// taken: only the relative ordering of distances ever matters here.
//
// Complexity: O(1)
func Dist2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// Collinear reports whether a cross product or orientation value cr is
// within the collinearity tolerance eps. A non-positive eps selects the
// package default Epsilon.
func Collinear(cr, eps float64) bool {
	if eps <= 0 {
		eps = Epsilon
	}

	return math.Abs(cr) < eps
}

// Convex reports whether hull, read as a closed polygon of indices into
// points, makes no clockwise turn: every wrapping consecutive triple must
// have Orientation ≥ −eps. Hulls with fewer than 3 vertices are degenerate
// (a point or a segment) and are never convex polygons, so Convex returns
// false for them. Indices must be valid for points.
//
// A non-positive eps selects the package default Epsilon.
//
// Complexity: O(len(hull))
func Convex(points []Point, hull []int, eps float64) bool {
	if eps <= 0 {
		eps = Epsilon
	}
	n := len(hull)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		o := points[hull[i]]
		a := points[hull[(i+1)%n]]
		b := points[hull[(i+2)%n]]
		if Orientation(o, a, b) < -eps {
			return false
		}
	}

	return true
}
