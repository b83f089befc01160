package geo_test

import (
	"testing"

	"github.com/soypat/geo"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTransformToLocal(t *testing.T) {
	tol := geo.DefaultTolerance()

	origin := geo.NewPoint(1, 1, 1)
	u := geo.NewVector(1, 1, 1)
	v := geo.NewVector(-1, 1, -1)
	m := geo.TransformToLocal(origin, u, v, tol)

	if !scalar.EqualWithinAbs(m.At(0, 0), 0.577350, 1e-6) {
		t.Errorf("At(0,0) = %g, want 0.577350", m.At(0, 0))
	}
	if !scalar.EqualWithinAbs(m.At(1, 1), 0.577350, 1e-6) {
		t.Errorf("At(1,1) = %g, want 0.577350", m.At(1, 1))
	}
	if !scalar.EqualWithinAbs(m.At(2, 2), 0.707107, 1e-6) {
		t.Errorf("At(2,2) = %g, want 0.707107", m.At(2, 2))
	}
	if m.At(3, 3) != 1 {
		t.Errorf("At(3,3) = %g, want 1", m.At(3, 3))
	}

	if got := origin.Transform(m); !got.EqualTo(geo.Origin(), tol) {
		t.Errorf("frame origin must map to local origin, got %+v", got)
	}
}

func TestTransformToLocalRotatedFrame(t *testing.T) {
	tol := geo.DefaultTolerance()

	origin := geo.NewPoint(10, 20, 30)
	u := geo.NewVector(0.866025, 0.5, 0)
	v := geo.NewVector(-0.5, 0.866025, 0)
	m := geo.TransformToLocal(origin, u, v, tol)

	got := geo.NewPoint(8.6603, 42.3205, 60.0).Transform(m)
	if !got.EqualTo(geo.NewPoint(10, 20, 30), tol) {
		t.Errorf("local coordinates = %+v, want (10,20,30)", got)
	}
}

func TestTransformToLocalLargeCoordinates(t *testing.T) {
	tol := geo.DefaultTolerance()
	loose := geo.DefaultTolerance()
	loose.SetEqualPoint(0.005)

	origin := geo.NewPoint(83055.711625, 4650.0, 14686.607338)
	u := geo.NewVector(1, 0, -0.000556)
	v := geo.NewVector(0.000510, 0.398880, 0.917003)
	m := geo.TransformToLocal(origin, u, v, tol)

	if got := origin.Transform(m); !got.EqualTo(geo.Origin(), tol) {
		t.Errorf("origin must map to (0,0,0), got %+v", got)
	}

	got := geo.NewPoint(92443.211625, 5959.902281, 17693.140222).Transform(m)
	want := geo.NewPoint(9385.8256, 3284.2835, 0.1451)
	if !got.EqualTo(want, loose) {
		t.Errorf("local coordinates = %+v, want %+v", got, want)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tol := geo.DefaultTolerance()

	frames := []struct {
		origin geo.Point
		u, v   geo.Vector
	}{
		{geo.Origin(), geo.XAxis(), geo.YAxis()},
		{geo.NewPoint(10, 20, 30), geo.NewVector(1, 1, 0), geo.NewVector(-1, 1, 0)},
		{geo.NewPoint(-4, 7, 0.5), geo.NewVector(1, 2, 2), geo.NewVector(2, 1, -2)},
	}
	points := []geo.Point{
		geo.Origin(),
		geo.NewPoint(1, 2, 3),
		geo.NewPoint(-100, 42.5, 7),
	}
	for _, f := range frames {
		toLocal := geo.TransformToLocal(f.origin, f.u, f.v, tol)
		toWorld := geo.TransformToWorld(f.origin, f.u, f.v, tol)
		for _, p := range points {
			got := p.Transform(toLocal).Transform(toWorld)
			if !got.EqualTo(p, tol) {
				t.Errorf("round trip of %+v through frame %+v = %+v", p, f, got)
			}
		}
	}
}

func TestMatrixIdentity(t *testing.T) {
	tol := geo.DefaultTolerance()
	p := geo.NewPoint(3, -2, 9)
	if got := p.Transform(geo.Identity()); !got.EqualTo(p, tol) {
		t.Errorf("identity transform moved %+v to %+v", p, got)
	}
	m := geo.Identity().Mul(geo.Identity())
	if got := p.Transform(m); !got.EqualTo(p, tol) {
		t.Errorf("identity product moved %+v to %+v", p, got)
	}
}
