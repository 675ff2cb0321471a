package view

import (
	"fmt"
	"os"
)

// Direction is the world-space plane a view's image plane is most
// nearly parallel to, equivalently the world axis its vy basis vector
// is most aligned with.
type Direction int

const (
	// XY is returned when vy is most aligned with world Z.
	XY Direction = iota
	// XZ is returned when vy is most aligned with world Y.
	XZ
	// YZ is returned when vy is most aligned with world X.
	YZ
)

func (d Direction) String() string {
	switch d {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	default:
		return "unknown"
	}
}

// Frame is a view's camera frame: the image-plane origin and the three
// basis vectors. vy is the plane normal; vx and vz span the image plane.
type Frame struct {
	Origin Vector3
	Vx     Vector3
	Vy     Vector3
	Vz     Vector3
}

// View owns one silhouette projection: its camera frame, its contour
// polygon, and the plane<->world maps built on top of them. A View is
// immutable once constructed.
type View struct {
	Name    string
	Frame   Frame
	Polygon []Vector2 // empty => degenerate view, silhouette is empty
}

// New constructs a View from a directory containing camera.{json,toml}
// and plane.bmp. Per spec.md §7, callers are expected to skip a View
// whose construction fails rather than abort the whole model.
func New(dir string) (*View, error) {
	if !hasFile(dir, "camera.json") && !hasFile(dir, "camera.toml") {
		return nil, ErrMissingFiles
	}
	if !hasFile(dir, "plane.bmp") {
		return nil, ErrMissingFiles
	}

	frame, name, err := parseMetadata(dir)
	if err != nil {
		return nil, err
	}
	if frame.Vy.IsZero() {
		return nil, fmt.Errorf("%w: vy must be nonzero", ErrBadSchema)
	}

	gray, err := loadBitmap(dir + "/plane.bmp")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	polygon := ExtractContour(gray)

	return &View{Name: name, Frame: frame, Polygon: polygon}, nil
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(dir + "/" + name)
	return err == nil
}

// PlaneToReal and RealToPlane are defined on Frame in geometry.go;
// View forwards to its embedded frame.

// PlaneToReal maps a plane point back into world space.
func (v *View) PlaneToReal(p Vector2) Vector3 {
	return v.Frame.PlaneToReal(p)
}

// RealToPlane solves for the plane coordinates of a world point.
func (v *View) RealToPlane(p Vector3) (Vector2, error) {
	return v.Frame.RealToPlane(p)
}

// IsPointInsideContour reports whether p lies inside the view's
// silhouette polygon, using even-odd ray casting. Always false for an
// empty polygon.
func (v *View) IsPointInsideContour(p Vector2) bool {
	return isPointInside(v.Polygon, p)
}

// GetBounds returns the polygon's axis-aligned bounding box
// (xmin, ymin, xmax, ymax), or all zeros if the polygon is empty.
func (v *View) GetBounds() (xmin, ymin, xmax, ymax float32) {
	if len(v.Polygon) == 0 {
		return 0, 0, 0, 0
	}
	xmin, xmax = v.Polygon[0].X, v.Polygon[0].X
	ymin, ymax = v.Polygon[0].Y, v.Polygon[0].Y
	for _, p := range v.Polygon[1:] {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return xmin, ymin, xmax, ymax
}

// GetDirection classifies which world plane the view's image plane is
// most nearly parallel to, from the dominant component of |vy|. Ties
// are broken in the exact order YZ > XZ > XY (spec.md §4.4); this order
// determines which axes are scanned vs. carved during reconstruction.
func (v *View) GetDirection() Direction {
	vy := v.Frame.Vy
	dx := absf(vy.X)
	dy := absf(vy.Y)
	dz := absf(vy.Z)

	switch {
	case dx >= dy && dx >= dz:
		return YZ
	case dy >= dx && dy >= dz:
		return XZ
	default:
		return XY
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
