package geo_test

import (
	"testing"

	"github.com/soypat/geo"
)

func TestToleranceDefaults(t *testing.T) {
	tol := geo.DefaultTolerance()
	if tol.EqualPoint() != 1e-4 {
		t.Errorf("EqualPoint default = %g, want 1e-4", tol.EqualPoint())
	}
	if tol.EqualVector() != 1e-6 {
		t.Errorf("EqualVector default = %g, want 1e-6", tol.EqualVector())
	}
	if tol.Convergence() != 1e-6 {
		t.Errorf("Convergence default = %g, want 1e-6", tol.Convergence())
	}
	if tol.Calculation() != 1e-8 {
		t.Errorf("Calculation default = %g, want 1e-8", tol.Calculation())
	}
}

func TestToleranceSetterGuard(t *testing.T) {
	tol := geo.DefaultTolerance()

	tol.SetEqualPoint(0.5)
	if tol.EqualPoint() != 0.5 {
		t.Errorf("SetEqualPoint(0.5): got %g", tol.EqualPoint())
	}
	// Negative input resets to the compiled default.
	tol.SetEqualPoint(-1)
	if tol.EqualPoint() != 1e-4 {
		t.Errorf("SetEqualPoint(-1): got %g, want default 1e-4", tol.EqualPoint())
	}

	tol.SetEqualVector(-1)
	if tol.EqualVector() != 1e-6 {
		t.Errorf("SetEqualVector(-1): got %g, want default 1e-6", tol.EqualVector())
	}
	tol.SetConvergence(-0.1)
	if tol.Convergence() != 1e-6 {
		t.Errorf("SetConvergence(-0.1): got %g, want default 1e-6", tol.Convergence())
	}
	tol.SetCalculation(2e-9)
	if tol.Calculation() != 2e-9 {
		t.Errorf("SetCalculation(2e-9): got %g", tol.Calculation())
	}
}
