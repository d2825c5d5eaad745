package graham

import (
	"math"
	"sort"

	"github.com/katalvlaran/hull2d/geom"
)

// Compute runs the angular sweep over points and returns the hull indices
// plus the comparison count. The input is read-only; repeated calls over
// the same slice return identical results.
//
// Degenerate inputs are not errors: an empty input yields an empty result,
// fewer than 3 points are returned as-is, and fully collinear input
// reduces to its two extremes (one index when all points coincide).
// The only error condition is an invalid Option value.
//
// Complexity: O(n log n) time, O(n) space.
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
	if n == 0 {
		return res, nil
	}

	// 2) Pivot selection: smallest y, ties broken by smallest x.
	// n−1 comparisons, one counter tick each.
	pivot := 0
	for i := 1; i < n; i++ {
		res.Iterations++
		if points[i].Y < points[pivot].Y ||
			(points[i].Y == points[pivot].Y && points[i].X < points[pivot].X) {
			pivot = i
		}
	}
	if n < 3 {
		// Too few points for a sweep; hand the indices back in input order.
		res.Hull = make([]int, n)
		for i := range res.Hull {
			res.Hull[i] = i
		}

		return res, nil
	}
	p0 := points[pivot]

	// 3) Angular sort around the pivot, pivot pinned first. A larger cross
	// product means more counter-clockwise, so it sorts earlier; collinear
	// ties order nearer-first, consistent with the reduction below keeping
	// the farthest. Pivot-pinning comparisons are free; every cross
	// product ticks the counter.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(x, y int) bool {
		a, b := idx[x], idx[y]
		if a == pivot {
			return true
		}
		if b == pivot {
			return false
		}
		va := sub(points[a], p0)
		vb := sub(points[b], p0)
		res.Iterations++
		cr := geom.Cross(va, vb)
		if geom.Collinear(cr, eps) {
			return geom.Dist2(p0, points[a]) < geom.Dist2(p0, points[b])
		}

		return cr > 0
	})

	// 4) Collinear-run reduction: of consecutive candidates sharing the
	// pivot angle, keep only the farthest. The pivot itself always stays;
	// exact duplicates of the pivot are dropped so that fully duplicated
	// input collapses to a single vertex.
	filtered := make([]int, 0, n)
	filtered = append(filtered, pivot)
	for _, id := range idx[1:] {
		if id == pivot {
			continue
		}
		last := filtered[len(filtered)-1]
		if last == pivot {
			res.Iterations++
			if geom.Dist2(p0, points[id]) > 0 {
				filtered = append(filtered, id)
			}

			continue
		}
		res.Iterations++
		cr := geom.Cross(sub(points[last], p0), sub(points[id], p0))
		if geom.Collinear(cr, eps) {
			if geom.Dist2(p0, points[last]) < geom.Dist2(p0, points[id]) {
				filtered[len(filtered)-1] = id
			}
		} else {
			filtered = append(filtered, id)
		}
	}

	// 5) Degenerate exit: everything collinear with the pivot (or
	// duplicated) leaves a point or a segment — no polygon to sweep.
	if len(filtered) < 3 {
		res.Hull = filtered

		return res, nil
	}

	// 6) Monotone stack sweep. Orientation ≤ 0 means the top of the stack
	// does not make a strict left turn and cannot be a hull vertex; the
	// "≤" rather than "<" also evicts collinear boundary points, keeping
	// the hull a minimal vertex set. One counter tick per orientation test.
	stack := make([]int, 0, len(filtered))
	stack = append(stack, filtered[0], filtered[1])
	for _, cand := range filtered[2:] {
		for len(stack) >= 2 {
			res.Iterations++
			cr := geom.Orientation(points[stack[len(stack)-2]], points[stack[len(stack)-1]], points[cand])
			if cr > 0 {
				break
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, cand)
	}
	res.Hull = stack

	return res, nil
}

// sub returns the vector a−b.
func sub(a, b geom.Point) geom.Point {
	return geom.Point{X: a.X - b.X, Y: a.Y - b.Y}
}
