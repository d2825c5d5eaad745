// Package brute_test provides runnable examples for the edge-test hull.
package brute_test

import (
	"fmt"

	"github.com/katalvlaran/hull2d/brute"
	"github.com/katalvlaran/hull2d/geom"
)

// ExampleCompute demonstrates the edge test on a square with one interior
// point and shows the evaluation counter, the metric this algorithm
// exists for.
func ExampleCompute() {
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 4, Y: 4},
		{X: 0, Y: 4},
		{X: 2, Y: 2}, // interior, never a hull vertex
	}

	res, err := brute.Compute(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("hull:", res.Hull)
	fmt.Println("orientation evaluations:", res.Iterations)
	// Output:
	// hull: [0 1 2 3]
	// orientation evaluations: 27
}
