// Package solve runs both convex-hull algorithms — the O(n log n) angular
// sweep (package graham) and the O(n³) edge test (package brute) — over
// one shared point sequence and returns both hulls with their iteration
// counters side by side.
//
// The two computations are completely independent: they share nothing but
// read-only access to the input, their counters measure different units
// of work, and their hulls may legitimately differ on degenerate input
// (a point lying on a hull edge is kept by the edge test and dropped by
// the sweep). RunBoth never merges or reconciles them; presentation is
// the caller's concern.
//
// Fewer than 3 points short-circuit to a zero Result without invoking
// either algorithm — a documented fast path, not an error. Every call
// builds a fresh Result; nothing persists between runs.
//
// ⚙️ Usage:
//
//	res, err := solve.RunBoth(points)
//	// or, straight from a live container:
//	res, err := solve.RunBothSet(set, solve.WithParallel())
//
// WithParallel fans the two algorithms out onto separate goroutines. The
// input slice is read-only for both, so results are identical either way;
// it only trades latency for a goroutine pair.
package solve
