package geo_test

import (
	"errors"
	"testing"

	"github.com/soypat/geo"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewPlaneNormalizes(t *testing.T) {
	tol := geo.DefaultTolerance()
	p := geo.NewPlane(geo.NewPoint(1, 2, 3), geo.NewVector(0, 0, 2), tol)
	if p.A != 0 || p.B != 0 || !scalar.EqualWithinAbs(p.C, 1, 1e-12) {
		t.Errorf("normal = (%g,%g,%g), want (0,0,1)", p.A, p.B, p.C)
	}
	if !scalar.EqualWithinAbs(p.D, -3, 1e-12) {
		t.Errorf("D = %g, want -3", p.D)
	}
}

func TestPlaneDistanceAndClosestPoint(t *testing.T) {
	tol := geo.DefaultTolerance()
	p := geo.NewPlane(geo.NewPoint(0, 0, 3), geo.ZAxis(), tol)

	q := geo.NewPoint(4, 5, 8)
	if d := p.DistanceTo(q); !scalar.EqualWithinAbs(d, 5, 1e-12) {
		t.Errorf("DistanceTo = %g, want 5", d)
	}
	// Distance is absolute on either side of the plane.
	below := geo.NewPoint(4, 5, -2)
	if d := p.DistanceTo(below); !scalar.EqualWithinAbs(d, 5, 1e-12) {
		t.Errorf("DistanceTo below plane = %g, want 5", d)
	}

	if got := p.ClosestPoint(q); !got.EqualTo(geo.NewPoint(4, 5, 3), tol) {
		t.Errorf("ClosestPoint = %+v, want (4,5,3)", got)
	}
	if !p.Contains(geo.NewPoint(-7, 100, 3), tol) {
		t.Error("point on plane must be contained")
	}
	if p.Contains(q, tol) {
		t.Error("point off plane must not be contained")
	}
}

func TestPlaneParallelAndCoplanar(t *testing.T) {
	tol := geo.DefaultTolerance()
	base := geo.NewPlane(geo.NewPoint(0, 0, 3), geo.ZAxis(), tol)
	same := geo.NewPlane(geo.NewPoint(9, -4, 3), geo.NewVector(0, 0, -5), tol)
	offset := geo.NewPlane(geo.NewPoint(0, 0, 5), geo.ZAxis(), tol)
	tilted := geo.NewPlane(geo.Origin(), geo.NewVector(1, 0, 1), tol)

	if !base.IsParallelTo(same, tol) || !base.IsParallelTo(offset, tol) {
		t.Error("planes with parallel normals must be parallel")
	}
	if base.IsParallelTo(tilted, tol) {
		t.Error("tilted plane must not be parallel")
	}
	if !base.IsCoplanarWith(same, tol) {
		t.Error("same surface with flipped normal must be coplanar")
	}
	if base.IsCoplanarWith(offset, tol) {
		t.Error("offset parallel plane must not be coplanar")
	}
}

func TestPlaneIntersectPlane(t *testing.T) {
	tol := geo.DefaultTolerance()
	xy := geo.NewPlane(geo.Origin(), geo.ZAxis(), tol)
	vertical := geo.NewPlane(geo.NewPoint(3, 0, 0), geo.XAxis(), tol)

	line, err := xy.IntersectPlane(vertical, tol)
	if err != nil {
		t.Fatalf("IntersectPlane: %v", err)
	}
	// The line must lie in both planes and run along y.
	if !xy.Contains(line.Start, tol) || !vertical.Contains(line.Start, tol) {
		t.Errorf("line start %+v not on both planes", line.Start)
	}
	if !xy.Contains(line.End, tol) || !vertical.Contains(line.End, tol) {
		t.Errorf("line end %+v not on both planes", line.End)
	}
	if !line.Direction(tol).IsParallelTo(geo.YAxis(), tol) {
		t.Errorf("line direction = %+v, want along y", line.Direction(tol))
	}

	parallel := geo.NewPlane(geo.NewPoint(0, 0, 4), geo.ZAxis(), tol)
	if _, err := xy.IntersectPlane(parallel, tol); !errors.Is(err, geo.ErrInvalidInput) {
		t.Errorf("parallel planes error = %v, want ErrInvalidInput", err)
	}
	if _, err := xy.IntersectPlane(xy, tol); !errors.Is(err, geo.ErrInvalidInput) {
		t.Errorf("coplanar planes error = %v, want ErrInvalidInput", err)
	}
}

func TestPlaneIntersectPlaneOblique(t *testing.T) {
	tol := geo.DefaultTolerance()
	p1 := geo.NewPlane(geo.NewPoint(0, 0, 1), geo.NewVector(1, 1, 1), tol)
	p2 := geo.NewPlane(geo.NewPoint(2, 0, 0), geo.NewVector(1, -2, 0), tol)

	line, err := p1.IntersectPlane(p2, tol)
	if err != nil {
		t.Fatalf("IntersectPlane: %v", err)
	}
	for _, pt := range []geo.Point{line.Start, line.End} {
		if !p1.Contains(pt, tol) || !p2.Contains(pt, tol) {
			t.Errorf("point %+v not on both planes", pt)
		}
	}
}
