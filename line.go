package geo

import (
	"fmt"
	"math"
)

// Line is the finite segment from Start to End. Whether a query treats the
// segment as an infinite line is controlled per call by an extends flag,
// not by a stored kind. A line is degenerate when Start and End coincide
// within tolerance; its direction is then undefined.
type Line struct {
	Start, End Point
}

// NewLine returns the segment from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the segment length.
func (l Line) Length() float64 { return l.Start.DistanceTo(l.End) }

// Direction returns the unit vector from Start toward End. A degenerate
// segment yields the zero vector.
func (l Line) Direction(tol *Tolerance) Vector {
	return l.End.Sub(l.Start).Unit(tol)
}

// ClosestPoint returns the point on l closest to p, projecting p onto the
// infinite carrier line. With extends false the projection is clamped to
// the nearer endpoint when it falls outside the segment.
func (l Line) ClosestPoint(p Point, extends bool, tol *Tolerance) Point {
	if p.EqualTo(l.Start, tol) {
		return l.Start
	}
	if p.EqualTo(l.End, tol) {
		return l.End
	}

	dir := l.Direction(tol)
	t := p.Sub(l.Start).Dot(dir)
	closest := l.Start.Add(dir.Scale(t))

	if !extends {
		toClosest := closest.Sub(l.Start).Unit(tol)
		if toClosest.EqualTo(dir.Neg(), tol) {
			closest = l.Start
		} else if l.Length() < closest.DistanceTo(l.Start) {
			closest = l.End
		}
	}
	return closest
}

// Contains reports whether p lies on l within tol.EqualPoint.
func (l Line) Contains(p Point, extends bool, tol *Tolerance) bool {
	if p.EqualTo(l.Start, tol) || p.EqualTo(l.End, tol) {
		return true
	}
	return l.ClosestPoint(p, extends, tol).EqualTo(p, tol)
}

// IsParallelTo reports whether l and other are truly parallel: their
// directions coincide (or oppose) and both endpoints of l sit at the same
// perpendicular offset from other. Coincident lines are parallel by this
// test.
func (l Line) IsParallelTo(other Line, tol *Tolerance) bool {
	closestStart := other.ClosestPoint(l.Start, true, tol)
	closestEnd := other.ClosestPoint(l.End, true, tol)

	dirStart := closestStart.Sub(l.Start).Unit(tol)
	dirEnd := closestEnd.Sub(l.End).Unit(tol)
	if !dirStart.EqualTo(dirEnd, tol) {
		return false
	}

	distStart := l.Start.DistanceTo(closestStart)
	distEnd := l.End.DistanceTo(closestEnd)

	dirSelf := l.Direction(tol)
	dirOther := other.Direction(tol)
	return math.Abs(distStart-distEnd) <= tol.EqualPoint() &&
		(dirSelf.EqualTo(dirOther, tol) || dirSelf.EqualTo(dirOther.Neg(), tol))
}

// IsParallelToPlane reports whether l runs parallel to p. A degenerate
// line is never parallel to a plane.
func (l Line) IsParallelToPlane(p Plane, tol *Tolerance) bool {
	if l.Start.EqualTo(l.End, tol) {
		return false
	}
	return math.Abs(p.Normal(tol).Dot(l.Direction(tol))) < tol.EqualVector()
}

// PointAtDist returns the point at the given distance from Start along the
// line. Distances within tol.EqualPoint of 0 or Length snap exactly to the
// endpoints. Fails with ErrInvalidInput when extends is false and the
// distance falls outside [0, Length].
func (l Line) PointAtDist(dist float64, extends bool, tol *Tolerance) (Point, error) {
	if math.Abs(dist) < tol.EqualPoint() {
		return l.Start, nil
	}
	if math.Abs(l.Length()-dist) < tol.EqualPoint() {
		return l.End, nil
	}
	if !extends && (dist < 0 || l.Length() < dist) {
		return Point{}, fmt.Errorf("point at dist %g beyond segment of length %g: %w",
			dist, l.Length(), ErrInvalidInput)
	}
	return l.Start.Add(l.Direction(tol).Scale(dist)), nil
}

// IntersectWithPlane returns the single point where l pierces p. An
// endpoint already on the plane is returned as-is. Fails with
// ErrMustBeNonZero when the line is parallel to the plane, and with
// ErrInvalidInput when the pierce point falls outside the segment and
// extends is false.
func (l Line) IntersectWithPlane(p Plane, extends bool, tol *Tolerance) (Point, error) {
	if p.Contains(l.Start, tol) {
		return l.Start, nil
	}
	if p.Contains(l.End, tol) {
		return l.End, nil
	}

	v := l.Start.Sub(l.End)
	den := p.A*v.X + p.B*v.Y + p.C*v.Z
	if math.Abs(den) < tol.Calculation() {
		return Point{}, fmt.Errorf("line-plane: line parallel to plane: %w", ErrMustBeNonZero)
	}

	num := p.A*l.Start.X + p.B*l.Start.Y + p.C*l.Start.Z + p.D
	u := num / den
	if math.Abs(u) < tol.Calculation() {
		u = 0
	}

	ip := l.Start.Add(l.End.Sub(l.Start).Scale(u))
	if !l.Contains(ip, extends, tol) {
		return Point{}, fmt.Errorf("line-plane: pierce point beyond segment: %w", ErrInvalidInput)
	}
	return ip, nil
}

// IntersectLine returns the intersection point of two lines via the
// classical closest-approach solution. A shared endpoint is returned
// without further solving. Fails with ErrMustBeNonZero for parallel lines
// and ErrInvalidInput when the candidate points fall outside a segment
// (extends false) or do not coincide (skew lines).
func (l Line) IntersectLine(other Line, extends bool, tol *Tolerance) ([]Point, error) {
	if l.Start.EqualTo(other.Start, tol) || l.Start.EqualTo(other.End, tol) {
		return []Point{l.Start}, nil
	}
	if l.End.EqualTo(other.Start, tol) || l.End.EqualTo(other.End, tol) {
		return []Point{l.End}, nil
	}

	if l.IsParallelTo(other, tol) {
		return nil, fmt.Errorf("line-line: parallel lines: %w", ErrMustBeNonZero)
	}

	dir1 := l.Direction(tol)
	dir2 := other.Direction(tol)

	q := dir1.Dot(dir2)
	startToStart := other.Start.Sub(l.Start)
	s1 := dir1.Dot(startToStart)
	s2 := -dir2.Dot(startToStart)

	t1 := (s2*q + s1) / (1 - q*q)
	t2 := (s1*q + s2) / (1 - q*q)

	ip1 := l.Start.Add(dir1.Scale(t1))
	ip2 := other.Start.Add(dir2.Scale(t2))

	if !l.Contains(ip1, extends, tol) || !other.Contains(ip2, extends, tol) {
		return nil, fmt.Errorf("line-line: intersection beyond segment: %w", ErrInvalidInput)
	}
	if !ip1.EqualTo(ip2, tol) {
		return nil, fmt.Errorf("line-line: skew lines: %w", ErrInvalidInput)
	}
	return []Point{ip1}, nil
}

// IntersectPlane implements Curve, wrapping IntersectWithPlane.
func (l Line) IntersectPlane(p Plane, extends bool, tol *Tolerance) ([]Point, error) {
	ip, err := l.IntersectWithPlane(p, extends, tol)
	if err != nil {
		return nil, err
	}
	return []Point{ip}, nil
}

// IntersectArc implements Curve; the arc does the work.
func (l Line) IntersectArc(a Arc, extends bool, tol *Tolerance) ([]Point, error) {
	return a.IntersectLine(l, extends, tol)
}
