package brute_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hull2d/brute"
	"github.com/katalvlaran/hull2d/geom"
)

// circlePoints builds n points on a circle, the worst case for the edge
// test: every pair of neighbors is an edge and nothing exits early there.
func circlePoints(n int) []geom.Point {
	pts := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, geom.Point{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)})
	}

	return pts
}

// benchmarkCompute runs the O(n³) edge test over n circle points.
// Sizes stay small on purpose; the cubic blow-up is the point.
func benchmarkCompute(b *testing.B, n int) {
	pts := circlePoints(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := brute.Compute(pts); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_Tiny tests 20 points.
func BenchmarkCompute_Tiny(b *testing.B) {
	benchmarkCompute(b, 20)
}

// BenchmarkCompute_Small tests 60 points.
func BenchmarkCompute_Small(b *testing.B) {
	benchmarkCompute(b, 60)
}

// BenchmarkCompute_Medium tests 150 points.
func BenchmarkCompute_Medium(b *testing.B) {
	benchmarkCompute(b, 150)
}
