// Package d2 holds small helpers for the 2D math the kernel performs in
// arc-local frames.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromR3 drops the Z component, projecting a frame-local vector onto the
// local XY plane.
func FromR3(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// AngleOf returns the angle of v measured from the positive X axis,
// normalized to [0, 2π).
func AngleOf(v r2.Vec) float64 {
	angle := math.Atan2(v.Y, v.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// EqualWithin reports whether a and b lie within dist of each other.
func EqualWithin(a, b r2.Vec, dist float64) bool {
	return r2.Norm(r2.Sub(a, b)) < dist
}
