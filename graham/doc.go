// Package graham computes 2D convex hulls with an angular sweep
// (Graham-scan style) in O(n log n).
//
// 🚀 What it does
//
//	Given an indexed point sequence, Compute returns the hull as indices
//	into that sequence, traced counter-clockwise starting at the pivot,
//	together with a count of primitive geometry comparisons performed.
//	The counter is a performance metric for comparing against the O(n³)
//	brute-force sibling in package brute; it plays no role in correctness.
//
// Steps:
//  1. Pivot selection — smallest y, ties broken by smallest x.
//  2. Angular sort — all indices ordered by angle around the pivot using
//     the sign of the cross product; angle ties (collinear with the pivot)
//     order by ascending squared distance.
//  3. Collinear-run reduction — of consecutive candidates sharing an angle,
//     only the farthest survives. Exact duplicates of the pivot are dropped.
//  4. Degenerate exit — fewer than 3 survivors are returned as-is (a point
//     or a segment, never to be closed into a polygon).
//  5. Monotone stack sweep — pop while the top triple fails to make a
//     strict left turn (orientation ≤ 0), so collinear boundary points are
//     excluded and the hull is a minimal vertex set.
//
// Collinearity is decided against geom.Epsilon by default; both hull
// packages must be driven with the same tolerance to stay comparable.
//
// Complexity:
//
//   - Time:  O(n log n) — dominated by the angular sort.
//   - Space: O(n) — index, filter and stack slices.
//
// ⚙️ Usage:
//
//	res, err := graham.Compute(points)
//	if err != nil {
//	    // only reachable with an invalid WithEpsilon value
//	}
//	fmt.Println(res.Hull, res.Iterations)
package graham
