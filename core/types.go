package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/hull2d/geom"
)

// ErrIndexOutOfRange is returned by At when the requested index does not
// address a point in the set.
var ErrIndexOutOfRange = errors.New("core: point index out of range")

// PointSet is an ordered, append-only collection of 2D points.
//
// The zero value is ready to use. Points are only ever appended or wiped
// wholesale; there is no removal or in-place update, which is what keeps
// indices stable across the lifetime of the set.
type PointSet struct {
	mu  sync.RWMutex
	pts []geom.Point
}

// NewPointSet returns a PointSet pre-populated with the given points, in
// order. The initial slice is copied; the caller keeps ownership of it.
func NewPointSet(initial ...geom.Point) *PointSet {
	s := &PointSet{}
	if len(initial) > 0 {
		s.pts = append(make([]geom.Point, 0, len(initial)), initial...)
	}

	return s
}
