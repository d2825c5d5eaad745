package core_test

import (
	"testing"

	"github.com/katalvlaran/hull2d/core"
	"github.com/katalvlaran/hull2d/geom"
	"github.com/stretchr/testify/require"
)

// TestPointSet_AddAssignsSequentialIndices verifies that Add returns the
// index of the appended point and that indices stay stable.
func TestPointSet_AddAssignsSequentialIndices(t *testing.T) {
	s := core.NewPointSet()

	require.Equal(t, 0, s.Add(1, 2))
	require.Equal(t, 1, s.Add(3, 4))
	require.Equal(t, 2, s.AddPoint(geom.Point{X: 5, Y: 6}))
	require.Equal(t, 3, s.Len())

	p, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: 3, Y: 4}, p)
}

// TestPointSet_AtOutOfRange verifies the sentinel for bad indices.
func TestPointSet_AtOutOfRange(t *testing.T) {
	s := core.NewPointSet(geom.Point{X: 1, Y: 1})

	_, err := s.At(-1)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)

	_, err = s.At(1)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

// TestPointSet_PointsIsDefensiveCopy ensures that mutating a returned
// snapshot, or the set itself, never leaks into the other.
func TestPointSet_PointsIsDefensiveCopy(t *testing.T) {
	s := core.NewPointSet(geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2})

	snap := s.Points()
	require.Len(t, snap, 2)

	// Writing into the snapshot must not affect the set.
	snap[0] = geom.Point{X: 99, Y: 99}
	p, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: 1, Y: 1}, p)

	// Appending to the set must not grow an earlier snapshot.
	s.Add(3, 3)
	require.Len(t, snap, 2)
}

// TestPointSet_ClearEmptiesTheSet verifies Clear and that the zero value
// is usable afterwards.
func TestPointSet_ClearEmptiesTheSet(t *testing.T) {
	s := core.NewPointSet(geom.Point{X: 1, Y: 1})
	s.Clear()

	require.Zero(t, s.Len())
	require.Nil(t, s.Points())

	// The set accepts points again after a Clear, starting at index 0.
	require.Equal(t, 0, s.Add(7, 7))
}

// TestPointSet_CloneIsIndependent verifies deep-copy semantics of Clone.
func TestPointSet_CloneIsIndependent(t *testing.T) {
	s := core.NewPointSet(geom.Point{X: 1, Y: 1})
	c := s.Clone()

	c.Add(2, 2)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, c.Len())

	s.Clear()
	require.Equal(t, 2, c.Len())
}

// TestPointSet_DuplicateCoordinatesAreDistinct pins the identity model:
// equal coordinates at different indices are different points.
func TestPointSet_DuplicateCoordinatesAreDistinct(t *testing.T) {
	s := core.NewPointSet()

	i := s.Add(1, 1)
	j := s.Add(1, 1)
	require.NotEqual(t, i, j)
	require.Equal(t, 2, s.Len())
}
