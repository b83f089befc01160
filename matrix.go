package geo

import "gonum.org/v1/gonum/spatial/r3"

// Matrix is a row-major 4×4 homogeneous transform applied to row vectors:
// q = [p 1]·M. For the local⇄world frame transforms this package builds,
// the rotation block occupies the upper-left 3×3, the translation the
// bottom row, and the last column stays [0 0 0 1]ᵀ.
type Matrix struct {
	el [4][4]float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	var m Matrix
	m.el[0][0], m.el[1][1], m.el[2][2], m.el[3][3] = 1, 1, 1, 1
	return m
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.el[i][j] }

// Mul returns the product m·n, the transform that applies m first and n
// second under the row-vector convention.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var e float64
			for k := 0; k < 4; k++ {
				e += m.el[i][k] * n.el[k][j]
			}
			out.el[i][j] = e
		}
	}
	return out
}

// MulPosition applies the affine map to a position with implicit w=1.
func (m Matrix) MulPosition(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: p.X*m.el[0][0] + p.Y*m.el[1][0] + p.Z*m.el[2][0] + m.el[3][0],
		Y: p.X*m.el[0][1] + p.Y*m.el[1][1] + p.Z*m.el[2][1] + m.el[3][1],
		Z: p.X*m.el[0][2] + p.Y*m.el[1][2] + p.Z*m.el[2][2] + m.el[3][2],
	}
}

// toOrigin translates o to the origin.
func toOrigin(o Point) Matrix {
	m := Identity()
	m.el[3][0], m.el[3][1], m.el[3][2] = -o.X, -o.Y, -o.Z
	return m
}

// rotationInto maps world displacements onto the frame axes u, v, w
// (axes as columns).
func rotationInto(u, v, w Vector) Matrix {
	m := Identity()
	m.el[0][0], m.el[0][1], m.el[0][2] = u.X, v.X, w.X
	m.el[1][0], m.el[1][1], m.el[1][2] = u.Y, v.Y, w.Y
	m.el[2][0], m.el[2][1], m.el[2][2] = u.Z, v.Z, w.Z
	return m
}

// rotationOutOf maps frame coordinates back to world displacements
// (axes as rows).
func rotationOutOf(u, v, w Vector) Matrix {
	m := Identity()
	m.el[0][0], m.el[0][1], m.el[0][2] = u.X, u.Y, u.Z
	m.el[1][0], m.el[1][1], m.el[1][2] = v.X, v.Y, v.Z
	m.el[2][0], m.el[2][1], m.el[2][2] = w.X, w.Y, w.Z
	return m
}

// TransformToLocal returns the transform from world coordinates into the
// local frame defined by origin and the in-plane axes u and v. The third
// axis is u×v; all three are normalized before use.
func TransformToLocal(origin Point, u, v Vector, tol *Tolerance) Matrix {
	w := u.Cross(v)
	return toOrigin(origin).Mul(rotationInto(u.Unit(tol), v.Unit(tol), w.Unit(tol)))
}

// TransformToWorld returns the transform from the local frame defined by
// origin, u and v back into world coordinates. It is the inverse of
// TransformToLocal for the same frame.
func TransformToWorld(origin Point, u, v Vector, tol *Tolerance) Matrix {
	w := u.Cross(v)
	m := rotationOutOf(u.Unit(tol), v.Unit(tol), w.Unit(tol))
	m.el[3][0], m.el[3][1], m.el[3][2] = origin.X, origin.Y, origin.Z
	return m
}
