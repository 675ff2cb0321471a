package view

import (
	"errors"
	"math"
	"testing"
)

func approxVec2(a, b Vector2, eps float32) bool {
	return float64(abs32(a.X-b.X)) < float64(eps) && float64(abs32(a.Y-b.Y)) < float64(eps)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestPlaneToRealRealToPlaneRoundTrip(t *testing.T) {
	f := Frame{
		Origin: Vector3{X: 1, Y: 2, Z: 3},
		Vx:     Vector3{X: 1, Y: 0, Z: 0},
		Vy:     Vector3{X: 0, Y: 1, Z: 0},
		Vz:     Vector3{X: 0, Y: 0, Z: 1},
	}

	p := Vector2{X: 4, Y: -5}
	world := f.PlaneToReal(p)

	got, err := f.RealToPlane(world)
	if err != nil {
		t.Fatalf("RealToPlane: %v", err)
	}
	if !approxVec2(got, p, 1e-4) {
		t.Errorf("round trip: got %+v, want %+v", got, p)
	}
}

func TestRealToPlaneSingularBasis(t *testing.T) {
	f := Frame{
		Origin: Vector3{},
		Vx:     Vector3{X: 1, Y: 0, Z: 0},
		Vy:     Vector3{X: 0, Y: 1, Z: 0},
		Vz:     Vector3{X: 2, Y: 0, Z: 0}, // parallel to vx => rank-deficient
	}

	_, err := f.RealToPlane(Vector3{X: 1, Y: 1, Z: 1})
	if err == nil {
		t.Fatal("expected a singular-basis error, got nil")
	}
	var ge *GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *GeometryError, got %T", err)
	}
	if !errors.Is(err, ErrSingular) {
		t.Errorf("expected errors.Is(err, ErrSingular) to hold")
	}
}

func TestPlaneToRealIgnoresVy(t *testing.T) {
	base := Frame{
		Origin: Vector3{X: 0, Y: 0, Z: 0},
		Vx:     Vector3{X: 1, Y: 0, Z: 0},
		Vz:     Vector3{X: 0, Y: 0, Z: 1},
	}
	other := base
	other.Vy = Vector3{X: 0, Y: 100, Z: 0}

	p := Vector2{X: 3, Y: 7}
	a := base.PlaneToReal(p)
	b := other.PlaneToReal(p)
	if a != b {
		t.Errorf("PlaneToReal depended on vy: %+v != %+v", a, b)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()
	if math.Abs(float64(n.Length()-1)) > 1e-5 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}

	zero := Vector3{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Normalize of zero vector = %+v, want zero", zero)
	}
}
