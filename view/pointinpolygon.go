package view

// isPointInside performs an even-odd ray-casting point-in-polygon test
// against a closed polygon (vertex n-1 implicitly connects to vertex 0).
// An empty polygon never contains any point. Edges exactly on the ray
// are handled by the strict half-open inequality on y, matching the
// C++ original (original_source/src/View.cpp's is_point_inside_contour);
// points exactly on the boundary have undefined membership.
func isPointInside(polygon []Vector2, p Vector2) bool {
	if len(polygon) == 0 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
