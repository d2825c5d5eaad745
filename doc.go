// Package hull2d computes 2D convex hulls two ways over the same point
// sequence and tells you what each way cost.
//
// 🚀 What is hull2d?
//
//	A small, deterministic library pairing a production algorithm with its
//	teaching-tool opposite:
//		• graham/ — O(n log n) angular sweep, pivot + sort + monotone stack
//		• brute/  — O(n³) pairwise edge test, the naive reference
//		• solve/  — runs both over one snapshot, returns both hulls and
//		  both iteration counters side by side
//		• core/   — the thread-safe, append-only PointSet the caller fills
//		• geom/   — orientation, cross product, squared distance, and the
//		  single Epsilon both algorithms share
//
// ✨ Why two algorithms?
//
//   - Hulls are all about edge cases – collinear runs, duplicate angles,
//     pivot ties; two independent computations keep each other honest
//   - Iteration counters – every primitive comparison is counted, so the
//     O(n log n) vs O(n³) gap is a number, not a claim
//   - Pure functions – immutable input snapshot in, explicit Result out;
//     no shared state, safe to run the pair concurrently
//
// Quick ASCII example:
//
//	    3●───────●2        points 0..3 form the hull,
//	     │  4●   │         point 4 is interior and is
//	     │       │         reported by neither algorithm
//	    0●───────●1
//
// A UI collecting clicks owns the rendering; this module owns exactly the
// geometry in between: points in, ordered hull indices and counters out.
//
//	go get github.com/katalvlaran/hull2d
package hull2d
