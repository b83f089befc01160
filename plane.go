package geo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Plane is the implicit-form plane Ax + By + Cz + D = 0. Planes built by
// NewPlane carry a unit normal (A, B, C); that is a construction
// convention, not an enforced invariant, so callers assembling literals
// must normalize themselves.
type Plane struct {
	A, B, C, D float64
}

// NewPlane returns the plane through point with the given normal. The
// normal is normalized before use.
func NewPlane(point Point, normal Vector, tol *Tolerance) Plane {
	n := normal.Unit(tol)
	return Plane{
		A: n.X, B: n.Y, C: n.Z,
		D: -(n.X*point.X + n.Y*point.Y + n.Z*point.Z),
	}
}

// Normal returns the unit normal of p.
func (p Plane) Normal(tol *Tolerance) Vector {
	return NewVector(p.A, p.B, p.C).Unit(tol)
}

func (p Plane) signedDistanceTo(pt Point) float64 {
	s := math.Sqrt(p.A*p.A + p.B*p.B + p.C*p.C)
	return (p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D) / s
}

// DistanceTo returns the perpendicular distance from pt to the plane.
func (p Plane) DistanceTo(pt Point) float64 {
	return math.Abs(p.signedDistanceTo(pt))
}

// ClosestPoint projects pt onto the plane along the normal.
func (p Plane) ClosestPoint(pt Point) Point {
	s2 := p.A*p.A + p.B*p.B + p.C*p.C
	t := -(p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D) / s2
	return NewPoint(pt.X+p.A*t, pt.Y+p.B*t, pt.Z+p.C*t)
}

// Contains reports whether pt lies on the plane within tol.EqualPoint.
func (p Plane) Contains(pt Point, tol *Tolerance) bool {
	return p.DistanceTo(pt) <= tol.EqualPoint()
}

// IsParallelTo reports whether the two planes have parallel normals.
func (p Plane) IsParallelTo(other Plane, tol *Tolerance) bool {
	return p.Normal(tol).IsParallelTo(other.Normal(tol), tol)
}

// IsCoplanarWith reports whether the two planes describe the same surface:
// parallel normals and the same offset.
func (p Plane) IsCoplanarWith(other Plane, tol *Tolerance) bool {
	if !p.IsParallelTo(other, tol) {
		return false
	}
	return other.Contains(p.ClosestPoint(Origin()), tol)
}

// IntersectPlane returns the line along which the two planes intersect.
// The line's start is the solution of both plane equations together with an
// auxiliary plane through the origin perpendicular to the intersection
// direction, solved by Cramer's rule; its end lies one unit along the
// direction.
//
// Fails with ErrInvalidInput when the planes are parallel or coplanar (no
// unique line) or when the 3×3 system is singular.
func (p Plane) IntersectPlane(other Plane, tol *Tolerance) (Line, error) {
	dir := p.Normal(tol).Cross(other.Normal(tol))
	if dir.Length() < tol.EqualVector() {
		return Line{}, fmt.Errorf("plane-plane: parallel planes: %w", ErrInvalidInput)
	}

	a := mat.NewDense(3, 3, []float64{
		p.A, p.B, p.C,
		other.A, other.B, other.C,
		dir.X, dir.Y, dir.Z,
	})
	det := mat.Det(a)
	if math.Abs(det) <= tol.Calculation() {
		return Line{}, fmt.Errorf("plane-plane: singular system: %w", ErrInvalidInput)
	}

	rhs := []float64{-p.D, -other.D, 0}
	var sol [3]float64
	for j := range sol {
		aj := mat.DenseCopyOf(a)
		aj.SetCol(j, rhs)
		sol[j] = mat.Det(aj) / det
	}

	start := NewPoint(sol[0], sol[1], sol[2])
	return NewLine(start, start.Add(dir.Unit(tol))), nil
}
