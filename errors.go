package geo

import "errors"

// Error kinds returned by fallible operations. Routines wrap these with
// fmt.Errorf("...: %w", ...) to add context; callers classify with
// errors.Is.
var (
	// ErrInvalidInput marks geometrically degenerate or out-of-range
	// requests: parallel lines asked to intersect, a point beyond a bounded
	// segment or arc with extension disallowed, circles that do not meet.
	ErrInvalidInput = errors.New("geo: invalid input")
	// ErrMustBeNonZero marks a required denominator that evaluated to zero,
	// such as intersecting a line with a plane it is parallel to.
	ErrMustBeNonZero = errors.New("geo: must be non-zero")
	// ErrMustBeNonNegative marks a negative discriminant: the requested
	// real intersection does not exist.
	ErrMustBeNonNegative = errors.New("geo: must be non-negative")
	// ErrNotImplemented marks a recognized but unhandled configuration,
	// e.g. tangent circles or arcs in skew planes. It signals a feature
	// gap, not bad input.
	ErrNotImplemented = errors.New("geo: not implemented")
)
