// Package core provides the fundamental in-memory PointSet container.
//
// A PointSet is the ordered, append-only sequence of 2D points that both
// hull algorithms consume. Indices 0..n−1 are stable and meaningful: a
// hull is reported as indices into this sequence, so points are identified
// by position, not by coordinate value.
//
// All mutations acquire a write lock; queries acquire a read lock. A run
// operates on an immutable snapshot obtained via Points, so points may be
// appended concurrently without disturbing a computation in flight.
package core
