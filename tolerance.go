package geo

// Compiled defaults for each threshold. Setters fall back to these when
// handed a negative value.
const (
	defaultTolEqualPoint  = 1.0e-4
	defaultTolEqualVector = 1.0e-6
	defaultTolConvergence = 1.0e-6
	defaultTolCalculation = 1.0e-8
)

// Tolerance carries the named epsilon thresholds used by every geometric
// predicate in this package. It is passed explicitly into each operation
// and never mutated by one, so a single instance may be shared across
// goroutines.
//
//   - equal point: spatial coincidence of points
//   - equal vector: directional coincidence and degeneracy of vectors
//   - convergence: iteration cutoff for numeric refinement
//   - calculation: generic near-zero test for scalars, determinants and
//     discriminants
type Tolerance struct {
	equalPoint  float64
	equalVector float64
	convergence float64
	calculation float64
}

// DefaultTolerance returns a Tolerance populated with the compiled
// defaults.
func DefaultTolerance() *Tolerance {
	return &Tolerance{
		equalPoint:  defaultTolEqualPoint,
		equalVector: defaultTolEqualVector,
		convergence: defaultTolConvergence,
		calculation: defaultTolCalculation,
	}
}

func (t *Tolerance) EqualPoint() float64  { return t.equalPoint }
func (t *Tolerance) EqualVector() float64 { return t.equalVector }
func (t *Tolerance) Convergence() float64 { return t.convergence }
func (t *Tolerance) Calculation() float64 { return t.calculation }

// SetEqualPoint stores v, or the compiled default if v is negative. No
// upper bound is enforced.
func (t *Tolerance) SetEqualPoint(v float64) {
	if v < 0 {
		v = defaultTolEqualPoint
	}
	t.equalPoint = v
}

// SetEqualVector stores v, or the compiled default if v is negative.
func (t *Tolerance) SetEqualVector(v float64) {
	if v < 0 {
		v = defaultTolEqualVector
	}
	t.equalVector = v
}

// SetConvergence stores v, or the compiled default if v is negative.
func (t *Tolerance) SetConvergence(v float64) {
	if v < 0 {
		v = defaultTolConvergence
	}
	t.convergence = v
}

// SetCalculation stores v, or the compiled default if v is negative.
func (t *Tolerance) SetCalculation(v float64) {
	if v < 0 {
		v = defaultTolCalculation
	}
	t.calculation = v
}
