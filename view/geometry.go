package view

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is the sentinel wrapped by every GeometryError, so callers
// can test with errors.Is(err, ErrSingular).
var ErrSingular = errors.New("singular plane basis")

// GeometryError is returned when a view's in-plane basis (vx, vz) is
// rank-deficient and RealToPlane cannot find a least-squares solution.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: singular plane basis: %s", e.Reason)
}

func (e *GeometryError) Unwrap() error { return ErrSingular }

// PlaneToReal maps a point on the image plane back into world space:
// origin + u*vx + v*vz. vy plays no part - only the in-plane basis does.
func (f Frame) PlaneToReal(p Vector2) Vector3 {
	return Vector3{
		X: f.Origin.X + f.Vx.X*p.X + f.Vz.X*p.Y,
		Y: f.Origin.Y + f.Vx.Y*p.X + f.Vz.Y*p.Y,
		Z: f.Origin.Z + f.Vx.Z*p.X + f.Vz.Z*p.Y,
	}
}

// RealToPlane solves the over-determined 3-equation, 2-unknown system
//
//	origin + u*vx + v*vz ~= p
//
// for (u, v) via the QR-based least-squares solve of the 3x2 matrix
// [vx | vz], mirroring the original C++ implementation's use of Eigen's
// colPivHouseholderQr (see original_source/src/View.cpp). Returns a
// *GeometryError if the basis is rank-deficient.
func (f Frame) RealToPlane(p Vector3) (Vector2, error) {
	delta := p.Sub(f.Origin)

	a := mat.NewDense(3, 2, []float64{
		float64(f.Vx.X), float64(f.Vz.X),
		float64(f.Vx.Y), float64(f.Vz.Y),
		float64(f.Vx.Z), float64(f.Vz.Z),
	})
	b := mat.NewDense(3, 1, []float64{
		float64(delta.X), float64(delta.Y), float64(delta.Z),
	})

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return Vector2{}, &GeometryError{Reason: err.Error()}
	}

	return Vector2{X: float32(x.At(0, 0)), Y: float32(x.At(1, 0))}, nil
}
