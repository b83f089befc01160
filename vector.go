package geo

import (
	"math"

	"github.com/soypat/geo/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a direction in 3D space. It is deliberately a distinct type
// from Point, even though both are coordinate triples, so positions and
// directions cannot be mixed without an explicit conversion.
type Vector r3.Vec

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// XAxis returns the unit vector along the world X axis.
func XAxis() Vector { return Vector{X: 1} }

// YAxis returns the unit vector along the world Y axis.
func YAxis() Vector { return Vector{Y: 1} }

// ZAxis returns the unit vector along the world Z axis.
func ZAxis() Vector { return Vector{Z: 1} }

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 { return r3.Norm(r3.Vec(v)) }

// Unit returns v scaled to unit length. A vector shorter than
// tol.EqualVector cannot be normalized and is returned unchanged; callers
// guard degenerate inputs upstream.
func (v Vector) Unit(tol *Tolerance) Vector {
	if v.Length() < tol.EqualVector() {
		return v
	}
	return Vector(r3.Unit(r3.Vec(v)))
}

// Dot returns the inner product of v and u.
func (v Vector) Dot(u Vector) float64 { return r3.Dot(r3.Vec(v), r3.Vec(u)) }

// Cross returns the outer (cross) product v×u.
func (v Vector) Cross(u Vector) Vector { return Vector(r3.Cross(r3.Vec(v), r3.Vec(u))) }

// Add returns v+u.
func (v Vector) Add(u Vector) Vector { return Vector(r3.Add(r3.Vec(v), r3.Vec(u))) }

// Sub returns v-u.
func (v Vector) Sub(u Vector) Vector { return Vector(r3.Sub(r3.Vec(v), r3.Vec(u))) }

// Scale returns v scaled by k.
func (v Vector) Scale(k float64) Vector { return Vector(r3.Scale(k, r3.Vec(v))) }

// Neg returns v reversed.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// EqualTo reports whether v and u coincide within tol.EqualVector.
func (v Vector) EqualTo(u Vector, tol *Tolerance) bool {
	return d3.EqualWithin(r3.Vec(v), r3.Vec(u), tol.EqualVector())
}

// IsParallelTo reports whether v and u point along the same or opposite
// directions. A zero-length operand is never parallel to anything.
func (v Vector) IsParallelTo(u Vector, tol *Tolerance) bool {
	if v.Length() < tol.EqualVector() || u.Length() < tol.EqualVector() {
		return false
	}
	return math.Abs(v.Unit(tol).Dot(u.Unit(tol))) > 1-tol.EqualVector()
}

// Point converts v to the position it reaches from the origin.
func (v Vector) Point() Point { return Point(v) }
