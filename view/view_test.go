package view

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestGetDirectionTieBreak(t *testing.T) {
	cases := []struct {
		name string
		vy   Vector3
		want Direction
	}{
		{"pure X", Vector3{X: 1}, YZ},
		{"pure Y", Vector3{Y: 1}, XZ},
		{"pure Z", Vector3{Z: 1}, XY},
		{"X ties Y, YZ wins", Vector3{X: 1, Y: 1}, YZ},
		{"X ties Z, YZ wins", Vector3{X: 1, Z: 1}, YZ},
		{"Y ties Z, XZ wins", Vector3{Y: 1, Z: 1}, XZ},
		{"all tie, YZ wins", Vector3{X: 1, Y: 1, Z: 1}, YZ},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := &View{Frame: Frame{Vy: c.vy}}
			if got := v.GetDirection(); got != c.want {
				t.Errorf("GetDirection() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestGetBoundsEmptyPolygon(t *testing.T) {
	v := &View{}
	xmin, ymin, xmax, ymax := v.GetBounds()
	if xmin != 0 || ymin != 0 || xmax != 0 || ymax != 0 {
		t.Errorf("expected all-zero bounds for empty polygon, got (%v,%v,%v,%v)", xmin, ymin, xmax, ymax)
	}
}

func TestNewBuildsViewFromDirectory(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "camera.json", `{
		"name": "front",
		"origin": [0, 0, 0],
		"vx": [1, 0, 0],
		"vy": [0, 0, 1],
		"vz": [0, 1, 0]
	}`)
	writePlaneBMP(t, dir)

	v, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v.Name != "front" {
		t.Errorf("Name = %q, want %q", v.Name, "front")
	}
	if len(v.Polygon) == 0 {
		t.Error("expected a non-empty contour polygon")
	}
	if v.GetDirection() != XY {
		t.Errorf("GetDirection() = %v, want XY", v.GetDirection())
	}
}

func TestNewMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir); err == nil {
		t.Fatal("expected an error for an empty view directory")
	}
}

func TestNewZeroVyIsRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "camera.json", `{
		"name": "degenerate",
		"origin": [0, 0, 0],
		"vx": [1, 0, 0],
		"vy": [0, 0, 0],
		"vz": [0, 1, 0]
	}`)
	writePlaneBMP(t, dir)

	if _, err := New(dir); err == nil {
		t.Fatal("expected an error for a zero vy basis vector")
	}
}

func writePlaneBMP(t *testing.T, dir string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: 255}) // white background
		}
	}
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			img.SetGray(x, y, color.Gray{Y: 0}) // dark silhouette
		}
	}

	f, err := os.Create(filepath.Join(dir, "plane.bmp"))
	if err != nil {
		t.Fatalf("creating plane.bmp: %v", err)
	}
	defer f.Close()

	if err := bmp.Encode(f, img); err != nil {
		t.Fatalf("encoding plane.bmp: %v", err)
	}
}
