package geo

import (
	"github.com/soypat/geo/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a position in 3D space. It has no identity beyond its
// coordinates.
type Point r3.Vec

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the point (0, 0, 0).
func Origin() Point { return Point{} }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return r3.Norm(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// EqualTo reports whether p and q coincide within tol.EqualPoint.
func (p Point) EqualTo(q Point, tol *Tolerance) bool {
	return d3.EqualWithin(r3.Vec(p), r3.Vec(q), tol.EqualPoint())
}

// Sub returns the displacement vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point(r3.Add(r3.Vec(p), r3.Vec(v)))
}

// SubVector returns p displaced by the reverse of v.
func (p Point) SubVector(v Vector) Point {
	return Point(r3.Sub(r3.Vec(p), r3.Vec(v)))
}

// MidPoint returns the point halfway between p and q.
func (p Point) MidPoint(q Point) Point {
	return Point(r3.Scale(0.5, r3.Add(r3.Vec(p), r3.Vec(q))))
}

// Transform applies the affine map m to p.
func (p Point) Transform(m Matrix) Point {
	return Point(m.MulPosition(r3.Vec(p)))
}

// Vector converts p to its displacement from the origin.
func (p Point) Vector() Vector { return Vector(p) }
