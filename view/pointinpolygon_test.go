package view

import "testing"

func square() []Vector2 {
	return []Vector2{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}
}

func TestIsPointInsideSquare(t *testing.T) {
	poly := square()

	cases := []struct {
		name string
		p    Vector2
		want bool
	}{
		{"center", Vector2{0, 0}, true},
		{"inside near edge", Vector2{4.9, 0}, true},
		{"far outside", Vector2{100, 100}, false},
		{"outside to the right", Vector2{6, 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := isPointInside(poly, c.p); got != c.want {
				t.Errorf("isPointInside(%+v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestIsPointInsideEmptyPolygon(t *testing.T) {
	if isPointInside(nil, Vector2{0, 0}) {
		t.Error("empty polygon should never contain a point")
	}
}

func TestIsPointInsideConcave(t *testing.T) {
	// a "C" shaped concave polygon: the notch on the right should read outside.
	poly := []Vector2{
		{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 6}, {10, 6}, {10, 10}, {0, 10},
	}
	if !isPointInside(poly, Vector2{2, 5}) {
		t.Error("expected point inside the body of the C to read inside")
	}
	if isPointInside(poly, Vector2{8, 5}) {
		t.Error("expected point inside the notch of the C to read outside")
	}
}
