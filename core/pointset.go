package core

import "github.com/katalvlaran/hull2d/geom"

// Add appends the point (x, y) and returns its index. Any hull result
// computed before the call describes a stale snapshot: callers should
// discard it and re-run.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized
func (s *PointSet) Add(x, y float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pts = append(s.pts, geom.Point{X: x, Y: y})

	return len(s.pts) - 1
}

// AddPoint appends p and returns its index. See Add.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized
func (s *PointSet) AddPoint(p geom.Point) int {
	return s.Add(p.X, p.Y)
}

// Clear empties the set. Previously returned snapshots are unaffected;
// previously computed hull results no longer describe this set.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (s *PointSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pts = nil
}

// Len returns the number of points in the set.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (s *PointSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.pts)
}

// At returns the point at index i, or ErrIndexOutOfRange if i is not in
// [0, Len).
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (s *PointSet) At(i int) (geom.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.pts) {
		return geom.Point{}, ErrIndexOutOfRange
	}

	return s.pts[i], nil
}

// Points returns a defensive copy of the point sequence. The snapshot is
// immune to later Add or Clear calls, which makes it the input of choice
// for a hull run: indices into the snapshot stay valid for as long as the
// caller holds it.
// Thread-safe: acquires a read lock.
//
// Complexity: O(n)
func (s *PointSet) Points() []geom.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.pts) == 0 {
		return nil
	}

	return append(make([]geom.Point, 0, len(s.pts)), s.pts...)
}

// Clone returns an independent deep copy of the set. Mutating the clone
// never affects the original and vice versa.
// Thread-safe: acquires a read lock.
//
// Complexity: O(n)
func (s *PointSet) Clone() *PointSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NewPointSet(s.pts...)
}
