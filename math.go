package geo

import (
	"fmt"
	"math"
)

// QuadraticEquation solves ax² + bx + c = 0 by the quadratic formula and
// returns both real roots. Root order is an artifact of the formula, not
// meaningful; treat the pair as an unordered set.
//
// A discriminant within tol.Calculation of zero is snapped to exactly zero
// so the tangent case yields a double root instead of a near miss. The snap
// window scales with the magnitude of b² and 4ac: cancellation error in
// b²-4ac grows with the operands, so an absolute window would miss double
// roots of large-coefficient equations. Fails with ErrInvalidInput when
// |a| ≤ tol.Calculation (not actually quadratic) and ErrMustBeNonNegative
// when the discriminant is negative.
func QuadraticEquation(a, b, c float64, tol *Tolerance) (x1, x2 float64, err error) {
	if math.Abs(a) <= tol.Calculation() {
		return 0, 0, fmt.Errorf("quadratic: leading coefficient %g: %w", a, ErrInvalidInput)
	}

	disc := b*b - 4*a*c
	scale := math.Max(1, math.Max(b*b, math.Abs(4*a*c)))
	if math.Abs(disc) <= tol.Calculation()*scale {
		disc = 0
	}
	if disc < 0 {
		return 0, 0, fmt.Errorf("quadratic: discriminant %g: %w", disc, ErrMustBeNonNegative)
	}

	sq := math.Sqrt(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a), nil
}
