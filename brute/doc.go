// Package brute computes 2D convex hulls by the O(n³) edge test, the
// deliberately naive sibling of package graham.
//
// 🚀 What it does
//
//	A pair (i, j) is a hull edge exactly when every other point lies on
//	one side of the line through i and j (collinear points lie on neither
//	side and disqualify nothing). Compute tries every unordered pair
//	against every third point, collects the vertices of the surviving
//	edges, and linearizes them into a polygon by sorting around their
//	arithmetic-mean centroid. The returned counter holds the number of
//	orientation evaluations actually performed, inner-loop early exits
//	included, so it is directly comparable run-to-run and against the
//	sweep's counter as a cost metric.
//
// Steps:
//  1. For each pair i < j, classify every other k as strictly positive
//     side or strictly negative side of line i→j; stop the scan as soon
//     as both sides are seen (the pair crosses the point cloud).
//  2. Pairs whose scan never saw both sides are hull edges; their
//     endpoints are collected, deduplicated.
//  3. Order the collected vertices by ascending atan2 angle around their
//     centroid (stable over ascending index), yielding a traversable
//     boundary even though the edge set itself is unordered.
//
// Degenerate policy: on fully collinear input every pair passes the edge
// test, so ALL points are kept as vertices, ordered by the centroid-angle
// sort. This is a pinned, deterministic choice; the sweep in package
// graham instead reduces the same input to its two extremes, and the two
// results are not reconciled.
//
// Complexity:
//
//   - Time:  O(n³) — n(n−1)/2 pairs, up to n−2 tests each.
//   - Space: O(n) — vertex marks and the ordering scratch slice.
//
// ⚙️ Usage:
//
//	res, err := brute.Compute(points)
//	if err != nil {
//	    // only reachable with an invalid WithEpsilon value
//	}
//	fmt.Println(res.Hull, res.Iterations)
package brute
