// Package geom provides the shared 2D geometry primitives used by every
// hull algorithm in this module: the signed-area orientation test, the
// plain vector cross product, and squared distances for tie-breaking.
//
// All predicates are pure functions over finite coordinates. NaN or
// infinite coordinates are undefined behavior and are not checked;
// callers must supply well-formed input.
//
// Collinearity is decided against a single tolerance, Epsilon. Both hull
// algorithms consume the same constant so their notions of "collinear"
// can never drift apart.
package geom
