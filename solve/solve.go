package solve

import (
	"math"
	"sync"

	"github.com/katalvlaran/hull2d/brute"
	"github.com/katalvlaran/hull2d/core"
	"github.com/katalvlaran/hull2d/geom"
	"github.com/katalvlaran/hull2d/graham"
)

// RunBoth computes both hulls over points and returns them side by side.
//
// Fewer than 3 points return a zero Result and a nil error without
// invoking either algorithm. Otherwise the angular sweep and the edge
// test run independently — sequentially by default, concurrently with
// WithParallel — over the same read-only slice, and their results are
// returned unmerged. The Result is fresh on every call.
//
// Complexity: O(n³) time (the edge test dominates), O(n) space.
func RunBoth(points []geom.Point, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Epsilon <= 0 || math.IsNaN(cfg.Epsilon) || math.IsInf(cfg.Epsilon, 1) {
		return Result{}, ErrNonPositiveEpsilon
	}

	// 2) Short-circuit: below 3 points there is no polygon to trace.
	var res Result
	if len(points) < 3 {
		return res, nil
	}

	// 3) Run both algorithms with one shared epsilon.
	var (
		fast    graham.Result
		slow    brute.Result
		fastErr error
		slowErr error
	)
	if cfg.Parallel {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			fast, fastErr = graham.Compute(points, graham.WithEpsilon(cfg.Epsilon))
		}()
		go func() {
			defer wg.Done()
			slow, slowErr = brute.Compute(points, brute.WithEpsilon(cfg.Epsilon))
		}()
		wg.Wait()
	} else {
		fast, fastErr = graham.Compute(points, graham.WithEpsilon(cfg.Epsilon))
		slow, slowErr = brute.Compute(points, brute.WithEpsilon(cfg.Epsilon))
	}
	if fastErr != nil {
		return Result{}, fastErr
	}
	if slowErr != nil {
		return Result{}, slowErr
	}

	res.FastHull = fast.Hull
	res.FastIterations = fast.Iterations
	res.SlowHull = slow.Hull
	res.SlowIterations = slow.Iterations

	return res, nil
}

// RunBothSet snapshots ps and delegates to RunBoth. The snapshot decouples
// the run from concurrent appends: indices in the Result refer to the
// sequence as it was at the moment of the call.
func RunBothSet(ps *core.PointSet, opts ...Option) (Result, error) {
	if ps == nil {
		return Result{}, ErrNilPointSet
	}

	return RunBoth(ps.Points(), opts...)
}
