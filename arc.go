package geo

import (
	"fmt"
	"math"

	"github.com/soypat/geo/internal/d2"
	"github.com/soypat/geo/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Arc is a circular arc embedded in 3D through a local right-handed frame.
// XAxis and YAxis are unit, mutually orthogonal vectors spanning the arc's
// plane; angles are radians in [0, 2π) measured from XAxis toward YAxis.
// Arcs built by this package start at angle 0 with EndAngle ≥ StartAngle;
// a full circle has EndAngle = 2π. The frame is stored by value: an Arc
// never references another entity.
type Arc struct {
	Center     Point
	XAxis      Vector
	YAxis      Vector
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// ArcFromThreePoints builds the arc that starts at start, ends at end and
// passes through onArc, by intersecting the perpendicular bisectors of
// (start, onArc) and (end, onArc) within the plane of the three points.
// The x axis points from the center toward start; the y axis completes a
// frame consistent with the winding implied by onArc.
//
// Fails with ErrInvalidInput when start and end are diametrically opposite
// through onArc (the bisectors are parallel) or when the points are
// otherwise degenerate (collinear, coincident).
func ArcFromThreePoints(start, end, onArc Point, tol *Tolerance) (Arc, error) {
	toStart := start.Sub(onArc).Unit(tol)
	toEnd := end.Sub(onArc).Unit(tol)

	if toStart.EqualTo(toEnd.Neg(), tol) {
		return Arc{}, fmt.Errorf("arc from three points: diametric points: %w", ErrInvalidInput)
	}

	normal := toStart.Cross(toEnd)

	mid1 := start.MidPoint(onArc)
	mid2 := end.MidPoint(onArc)
	bisector1 := NewLine(mid1, mid1.Add(toStart.Cross(normal)))
	bisector2 := NewLine(mid2, mid2.Add(toEnd.Cross(normal)))

	ips, err := bisector1.IntersectLine(bisector2, true, tol)
	if err != nil {
		return Arc{}, fmt.Errorf("arc from three points: no center: %w", ErrInvalidInput)
	}
	center := ips[0]

	radius := center.DistanceTo(onArc)
	xAxis := start.Sub(center).Unit(tol)

	toOnArc := onArc.Sub(center).Unit(tol)
	yAxis := xAxis.Cross(toOnArc).Cross(xAxis).Unit(tol)

	localEnd := end.Transform(TransformToLocal(center, xAxis, yAxis, tol))
	return Arc{
		Center:     center,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   angleAtLocal(localEnd),
	}, nil
}

// NewCircle returns a full circle of the given radius lying in the plane
// through center perpendicular to normal. Fails with ErrInvalidInput for a
// zero-length normal or a non-positive radius.
func NewCircle(center Point, normal Vector, radius float64, tol *Tolerance) (Arc, error) {
	if normal.Length() < tol.EqualVector() || radius <= 0 {
		return Arc{}, fmt.Errorf("circle: degenerate normal or radius %g: %w", radius, ErrInvalidInput)
	}
	u, v := d3.OrthonormalBasis(r3.Vec(normal.Unit(tol)))
	return Arc{
		Center:     center,
		XAxis:      Vector(u),
		YAxis:      Vector(v),
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   tau,
	}, nil
}

// angleAtLocal returns the angle of a frame-local point, normalized to
// [0, 2π).
func angleAtLocal(p Point) float64 {
	return d2.AngleOf(r2.Vec{X: p.X, Y: p.Y})
}

func (a Arc) pointAtAngle(angle float64) Point {
	v := a.XAxis.Scale(math.Cos(angle)).Add(a.YAxis.Scale(math.Sin(angle)))
	return a.Center.Add(v.Scale(a.Radius))
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() Point { return a.pointAtAngle(a.StartAngle) }

// EndPoint returns the point at EndAngle.
func (a Arc) EndPoint() Point { return a.pointAtAngle(a.EndAngle) }

// Length returns the arc length.
func (a Arc) Length() float64 {
	return (a.EndAngle - a.StartAngle) * a.Radius
}

func (a Arc) toLocal(tol *Tolerance) Matrix {
	return TransformToLocal(a.Center, a.XAxis, a.YAxis, tol)
}

func (a Arc) toWorld(tol *Tolerance) Matrix {
	return TransformToWorld(a.Center, a.XAxis, a.YAxis, tol)
}

// angleInRange reports whether angle lies within [StartAngle, EndAngle],
// with tol.Calculation slack at the boundaries.
func (a Arc) angleInRange(angle float64, tol *Tolerance) bool {
	if math.Abs(a.StartAngle-angle) < tol.Calculation() ||
		math.Abs(a.EndAngle-angle) < tol.Calculation() {
		return true
	}
	return a.StartAngle <= angle && angle <= a.EndAngle
}

// ClosestPoint returns the point on a closest to p: p is taken to the local
// frame, flattened into the arc's plane and projected radially onto the
// circle. When the projection lands outside the angular range and extends
// is false, the nearer endpoint (by distance in local space) is returned;
// an exact tie snaps to the start point.
func (a Arc) ClosestPoint(p Point, extends bool, tol *Tolerance) (Point, error) {
	local := p.Transform(a.toLocal(tol))
	local.Z = 0

	radial := NewLine(Origin(), local)
	onCircle, err := radial.PointAtDist(a.Radius, true, tol)
	if err != nil {
		return Point{}, err
	}

	angle := angleAtLocal(onCircle)
	if !extends && !a.angleInRange(angle, tol) {
		localStart := NewPoint(a.Radius*math.Cos(a.StartAngle), a.Radius*math.Sin(a.StartAngle), 0)
		localEnd := NewPoint(a.Radius*math.Cos(a.EndAngle), a.Radius*math.Sin(a.EndAngle), 0)
		if local.DistanceTo(localEnd) < local.DistanceTo(localStart) {
			return a.EndPoint(), nil
		}
		return a.StartPoint(), nil
	}
	return onCircle.Transform(a.toWorld(tol)), nil
}

// Contains reports whether p lies on the arc within tol.EqualPoint.
func (a Arc) Contains(p Point, extends bool, tol *Tolerance) bool {
	if a.StartPoint().EqualTo(p, tol) || a.EndPoint().EqualTo(p, tol) {
		return true
	}
	closest, err := a.ClosestPoint(p, extends, tol)
	if err != nil {
		return false
	}
	return closest.EqualTo(p, tol)
}

// ContainingPlane returns the plane the arc lies in.
func (a Arc) ContainingPlane(tol *Tolerance) Plane {
	return NewPlane(a.Center, a.XAxis.Cross(a.YAxis), tol)
}

// IntersectLine returns the intersection points of a line with the arc.
// A line lying in the arc's plane is solved as a 2D circle-line quadratic
// in the local frame and may yield one or two points; a line crossing the
// plane yields at most the single pierce point. extends unbounds both the
// segment and the angular range. Fails with ErrInvalidInput when nothing
// survives filtering, and propagates the quadratic solver's failures when
// no real intersection exists.
func (a Arc) IntersectLine(l Line, extends bool, tol *Tolerance) ([]Point, error) {
	plane := a.ContainingPlane(tol)
	if l.IsParallelToPlane(plane, tol) {
		if !plane.Contains(l.Start, tol) {
			return nil, fmt.Errorf("arc-line: line parallel to arc plane: %w", ErrInvalidInput)
		}
		return a.intersectLocalLine(l, extends, extends, tol)
	}

	ip, err := l.IntersectWithPlane(plane, extends, tol)
	if err != nil {
		return nil, err
	}
	if !a.Contains(ip, extends, tol) {
		return nil, fmt.Errorf("arc-line: pierce point off arc: %w", ErrInvalidInput)
	}
	return []Point{ip}, nil
}

// IntersectPlane intersects the arc's containing plane with p to obtain a
// chord line, then solves it against the circle in the local frame. Roots
// are filtered by the angular range unless extends. Fails with
// ErrInvalidInput when the planes are parallel or nothing survives.
func (a Arc) IntersectPlane(p Plane, extends bool, tol *Tolerance) ([]Point, error) {
	chord, err := a.ContainingPlane(tol).IntersectPlane(p, tol)
	if err != nil {
		return nil, err
	}
	return a.intersectLocalLine(chord, true, extends, tol)
}

// IntersectArc intersects two arcs. Only the coplanar case is solved, as a
// circle-circle intersection in this arc's local frame. Arcs in skew
// planes and tangent circles are recognized but unsupported
// (ErrNotImplemented); parallel-but-offset planes, concentric centers and
// disjoint circles carry no intersection (ErrInvalidInput).
func (a Arc) IntersectArc(other Arc, extends bool, tol *Tolerance) ([]Point, error) {
	p1 := a.ContainingPlane(tol)
	p2 := other.ContainingPlane(tol)
	if !p1.IsParallelTo(p2, tol) {
		return nil, fmt.Errorf("arc-arc: skew planes: %w", ErrNotImplemented)
	}
	if !p1.IsCoplanarWith(p2, tol) {
		return nil, fmt.Errorf("arc-arc: offset parallel planes: %w", ErrInvalidInput)
	}
	return a.intersectCoplanarCircle(other, extends, tol)
}

// intersectLocalLine intersects the arc's circle with a line already lying
// in the arc's plane, parameterized p = start + t·(end-start). lineExtends
// bounds candidates to the segment, arcExtends to the angular range.
func (a Arc) intersectLocalLine(l Line, lineExtends, arcExtends bool, tol *Tolerance) ([]Point, error) {
	toLocal := a.toLocal(tol)
	toWorld := a.toWorld(tol)

	start := d2.FromR3(r3.Vec(l.Start.Transform(toLocal)))
	end := d2.FromR3(r3.Vec(l.End.Transform(toLocal)))
	dir := r2.Sub(end, start)

	qa := r2.Dot(dir, dir)
	qb := 2 * r2.Dot(start, dir)
	qc := r2.Dot(start, start) - a.Radius*a.Radius
	t1, t2, err := QuadraticEquation(qa, qb, qc, tol)
	if err != nil {
		return nil, err
	}

	roots := []float64{t1}
	if math.Abs(t2-t1) > tol.Calculation() {
		roots = append(roots, t2)
	}

	var points []Point
	for _, t := range roots {
		lp := r2.Add(start, r2.Scale(t, dir))
		if !arcExtends && !a.angleInRange(d2.AngleOf(lp), tol) {
			continue
		}
		wp := NewPoint(lp.X, lp.Y, 0).Transform(toWorld)
		if !l.Contains(wp, lineExtends, tol) {
			continue
		}
		points = append(points, wp)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("arc chord: no intersection in range: %w", ErrInvalidInput)
	}
	return points, nil
}

// intersectCoplanarCircle solves the circle-circle intersection in a's
// local frame via the radical line.
func (a Arc) intersectCoplanarCircle(other Arc, extends bool, tol *Tolerance) ([]Point, error) {
	toWorld := a.toWorld(tol)
	center := d2.FromR3(r3.Vec(other.Center.Transform(a.toLocal(tol))))

	dist := r2.Norm(center)
	ra, rb := a.Radius, other.Radius

	if dist < tol.EqualPoint() {
		return nil, fmt.Errorf("circle-circle: concentric centers: %w", ErrInvalidInput)
	}
	// The tangency window scales with the operand magnitude, as the
	// distance computation loses absolute precision at large radii.
	tangentTol := tol.Calculation() * math.Max(1, dist+ra+rb)
	if math.Abs(dist-(ra+rb)) < tangentTol ||
		math.Abs(ra-(dist+rb)) < tangentTol ||
		math.Abs(rb-(dist+ra)) < tangentTol {
		return nil, fmt.Errorf("circle-circle: tangent circles: %w", ErrNotImplemented)
	}
	if dist > ra+rb || ra > dist+rb || rb > dist+ra {
		return nil, fmt.Errorf("circle-circle: disjoint circles: %w", ErrInvalidInput)
	}

	// Radical line: 2·center.X·x + 2·center.Y·y = k.
	k := ra*ra - rb*rb + dist*dist

	var locals []r2.Vec
	switch {
	case math.Abs(center.Y) <= tol.Calculation():
		// Centers share a y coordinate: x is fixed by the radical line.
		x := k / (2 * center.X)
		y2 := ra*ra - x*x
		if math.Abs(y2) <= tol.Calculation() {
			y2 = 0
		}
		if y2 < 0 {
			return nil, fmt.Errorf("circle-circle: radical line misses circle: %w", ErrMustBeNonNegative)
		}
		y := math.Sqrt(y2)
		locals = append(locals, r2.Vec{X: x, Y: y})
		if y > 0 {
			locals = append(locals, r2.Vec{X: x, Y: -y})
		}
	case math.Abs(center.X) <= tol.Calculation():
		y := k / (2 * center.Y)
		x2 := ra*ra - y*y
		if math.Abs(x2) <= tol.Calculation() {
			x2 = 0
		}
		if x2 < 0 {
			return nil, fmt.Errorf("circle-circle: radical line misses circle: %w", ErrMustBeNonNegative)
		}
		x := math.Sqrt(x2)
		locals = append(locals, r2.Vec{X: x, Y: y})
		if x > 0 {
			locals = append(locals, r2.Vec{X: -x, Y: y})
		}
	default:
		// Substitute y = (k - 2·cx·x)/(2·cy) into x² + y² = ra².
		qa := 4 * (center.X*center.X + center.Y*center.Y)
		qb := -4 * center.X * k
		qc := k*k - 4*center.Y*center.Y*ra*ra
		x1, x2, err := QuadraticEquation(qa, qb, qc, tol)
		if err != nil {
			return nil, err
		}
		locals = append(locals, r2.Vec{X: x1, Y: (k - 2*center.X*x1) / (2 * center.Y)})
		if math.Abs(x2-x1) > tol.Calculation() {
			locals = append(locals, r2.Vec{X: x2, Y: (k - 2*center.X*x2) / (2 * center.Y)})
		}
	}

	if len(locals) == 2 && d2.EqualWithin(locals[0], locals[1], tol.EqualPoint()) {
		locals = locals[:1]
	}

	var points []Point
	for _, lp := range locals {
		wp := NewPoint(lp.X, lp.Y, 0).Transform(toWorld)
		if !extends && (!a.Contains(wp, false, tol) || !other.Contains(wp, false, tol)) {
			continue
		}
		points = append(points, wp)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("circle-circle: no intersection within arc ranges: %w", ErrInvalidInput)
	}
	return points, nil
}
