package brute

import (
	"math"
	"sort"

	"github.com/katalvlaran/hull2d/geom"
)

// Compute runs the pairwise edge test over points and returns the hull
// indices plus the orientation-evaluation count. The input is read-only;
// repeated calls over the same slice return identical results.
//
// Fewer than 3 points yield an empty hull with zero iterations. Fully
// collinear input keeps every point as a vertex (see the package doc for
// the pinned degenerate policy). The only error condition is an invalid
// Option value.
//
// Complexity: O(n³) time, O(n) space.
func Compute(points []geom.Point, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Epsilon <= 0 || math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 1) {
		return Result{}, ErrNonPositiveEpsilon
	}
	eps := cfg.Epsilon

	var res Result
	n := len(points)
	if n < 3 {
		return res, nil
	}

	// 2) Edge test over every unordered pair. A pair survives when the
	// scan of third points never sees both a strictly positive and a
	// strictly negative side; collinear thirds vote for neither. The scan
	// stops as soon as the pair is disqualified.
	onHull := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pos, neg := false, false
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				res.Iterations++
				c := geom.Orientation(points[i], points[j], points[k])
				if c > eps {
					pos = true
				} else if c < -eps {
					neg = true
				}
				if pos && neg {
					break
				}
			}
			if !(pos && neg) {
				// Both endpoints of a hull edge are hull vertices; the
				// boolean marks deduplicate the two directions.
				onHull[i] = true
				onHull[j] = true
			}
		}
	}

	// 3) Collect surviving vertices in ascending index order.
	verts := make([]int, 0, n)
	for i, ok := range onHull {
		if ok {
			verts = append(verts, i)
		}
	}
	if len(verts) == 0 {
		return res, nil
	}

	// 4) Centroid-angle ordering turns the unordered vertex set into a
	// traversable boundary.
	res.Hull = orderByCentroidAngle(points, verts)

	return res, nil
}

// orderByCentroidAngle sorts verts (indices into points) by ascending
// atan2 angle around the arithmetic-mean centroid of the selected points.
// The sort is stable over the incoming ascending-index order, which pins
// the result for duplicate and centroid-coincident vertices.
func orderByCentroidAngle(points []geom.Point, verts []int) []int {
	if len(verts) <= 1 {
		return verts
	}

	var cx, cy float64
	for _, v := range verts {
		cx += points[v].X
		cy += points[v].Y
	}
	m := float64(len(verts))
	cx /= m
	cy /= m

	type angled struct {
		angle float64
		idx   int
	}
	arr := make([]angled, 0, len(verts))
	for _, v := range verts {
		arr = append(arr, angled{
			angle: math.Atan2(points[v].Y-cy, points[v].X-cx),
			idx:   v,
		})
	}
	sort.SliceStable(arr, func(a, b int) bool {
		return arr[a].angle < arr[b].angle
	})

	out := make([]int, len(arr))
	for i, e := range arr {
		out[i] = e.idx
	}

	return out
}
