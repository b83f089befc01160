// Package d3 holds small 3D vector helpers shared by the kernel's value
// types.
package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EqualWithin reports whether a and b lie within dist of each other
// (Euclidean distance, not componentwise).
func EqualWithin(a, b r3.Vec, dist float64) bool {
	return r3.Norm(r3.Sub(a, b)) < dist
}

// OrthonormalBasis returns two unit vectors completing a right-handed
// orthonormal frame with the unit vector n, so that u×v = n. The choice of
// u within the plane is arbitrary but deterministic.
func OrthonormalBasis(n r3.Vec) (u, v r3.Vec) {
	ref := r3.Vec{Z: 1}
	if math.Abs(n.Z) > 1-1e-9 {
		ref = r3.Vec{X: 1}
	}
	u = r3.Unit(r3.Cross(ref, n))
	v = r3.Cross(n, u)
	return u, v
}
