// Package geo implements a tolerance-aware kernel of 2D/3D geometric
// primitives: points, vectors, affine frame transforms, lines, planes and
// circular arcs, together with a unified curve intersection capability.
//
// Every predicate and intersection routine takes an explicit *Tolerance;
// there is no package-level epsilon state, so results are reproducible and
// concurrent callers may share values freely. All entities are plain value
// types with no ownership graph: recreate rather than mutate.
package geo

import "math"

const tau = 2 * math.Pi

// Curve is the intersection capability implemented by the bounded curve
// primitives of this package, Line and Arc. Each method returns the
// intersection points with the counterpart primitive, or an error kind from
// errors.go when the configuration is degenerate, out of range or
// unsupported.
//
// The extends flag treats the receiver and argument as unbounded (infinite
// line, full circle) for the duration of one query. Returned points are in
// no particular order; callers must not assume one.
type Curve interface {
	IntersectLine(l Line, extends bool, tol *Tolerance) ([]Point, error)
	IntersectPlane(p Plane, extends bool, tol *Tolerance) ([]Point, error)
	IntersectArc(a Arc, extends bool, tol *Tolerance) ([]Point, error)
}

var (
	_ Curve = Line{}
	_ Curve = Arc{}
)
