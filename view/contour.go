package view

import "image"

// foreground is the pixel value the contour walk treats as "inside the
// silhouette boundary" after thresholding and edge emphasis (see bitmap.go).
const foreground = 0xff

// ExtractContour traces the single closed contour of a thresholded,
// edge-emphasized grayscale image and returns its vertices, centered on
// the polygon's AABB midpoint. Returns an empty slice if the image has
// no foreground pixel.
//
// The walk (seed scan, vertex test, 4-neighbor advance skipping the
// previous pixel) follows the boundary-tracing algorithm in
// original_source/src/View.cpp's get_contour_polygon, generalized from
// OpenCV's cv::Mat indexing to Go's image.Gray.
func ExtractContour(img *image.Gray) []Vector2 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	at := func(x, z int) byte {
		return img.GrayAt(bounds.Min.X+x, bounds.Min.Y+z).Y
	}

	ix, iz, found := seek(img, width, height)
	if !found {
		return nil
	}

	px, pz := ix, iz
	cx, cz := ix, iz

	// Right, down, left, up - in that fixed order.
	dirs := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

	var points []Vector2
	for {
		horz := at(cx-1, cz) | at(cx+1, cz)
		vert := at(cx, cz-1) | at(cx, cz+1)
		if horz == foreground && vert == foreground {
			points = append(points, Vector2{X: float32(cx), Y: float32(-cz)})
		}

		nx, nz, advanced := -1, -1, false
		for _, d := range dirs {
			tx, tz := cx+d[0], cz+d[1]
			if tx < 0 || tx >= width || tz < 0 || tz >= height {
				continue
			}
			if at(tx, tz) == foreground && !(tx == px && tz == pz) {
				nx, nz = tx, tz
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
		px, pz = cx, cz
		cx, cz = nx, nz

		if cx == ix && cz == iz {
			break
		}
	}

	return centerPolygon(points)
}

// seek scans pixels in row-major order, skipping the one-pixel border,
// and returns the first foreground pixel found.
func seek(img *image.Gray, width, height int) (x, z int, found bool) {
	bounds := img.Bounds()
	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			if img.GrayAt(bounds.Min.X+x, bounds.Min.Y+z).Y == foreground {
				return x, z, true
			}
		}
	}
	return 0, 0, false
}

// centerPolygon translates vertices so their AABB is centered on the
// origin.
func centerPolygon(points []Vector2) []Vector2 {
	if len(points) == 0 {
		return nil
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	centered := make([]Vector2, len(points))
	for i, p := range points {
		centered[i] = Vector2{X: p.X - cx, Y: p.Y - cy}
	}
	return centered
}
