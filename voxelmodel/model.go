// Package voxelmodel implements the volume-carving reconstruction engine:
// it aggregates a model directory's views, derives world bounds,
// allocates a dense voxel occupancy grid, carves it against every
// view's silhouette, and emits the surviving voxels as cube centers.
package voxelmodel

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"carve/view"
)

// Model is a reconstructed volumetric solid: the views that produced
// it, the voxel occupancy grid, and the world bounds and cube list
// derived from carving. Construction runs reconstruction to completion;
// the result is read-only thereafter (the render package only borrows it).
type Model struct {
	Path       string
	Views      []*view.View
	Resolution int
	Space      []bool // flattened [R*R*R], true = voxel retained
	Bounds     [6]float32
	CubeDimensions view.Vector3
	Cubes      []view.Vector3
}

// New loads every view subdirectory of path, computes world bounds,
// carves the voxel grid against each view's silhouette in order, and
// emits the surviving cubes. Fails with ErrNotAPath if path doesn't
// exist, or ErrNoValidViews if every view subdirectory was skipped.
func New(path string, resolution int, printInfo bool) (*Model, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotAPath, path)
	}

	views, err := loadViews(path)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Path:       path,
		Views:      views,
		Resolution: resolution,
	}

	m.calculateBounds()
	m.initialReconstruction()
	for _, v := range m.Views {
		slog.Debug("reconstructing with view", "name", v.Name)
		m.projectViewToVoxels(v)
	}
	m.surfaceGeneration()

	if printInfo {
		fmt.Print(m.InfoBlock())
	}

	return m, nil
}

// loadViews enumerates immediate subdirectories of path in sorted order
// (spec.md §9 open question #3: scan order must be deterministic), and
// constructs a View from each. A subdirectory that fails to produce a
// valid View is logged and skipped, never aborting the whole model.
func loadViews(path string) ([]*view.View, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAPath, path)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var views []*view.View
	for _, name := range names {
		dir := filepath.Join(path, name)
		v, err := view.New(dir)
		if err != nil {
			slog.Warn("invalid view, skipping", "path", dir, "error", err)
			continue
		}
		views = append(views, v)
	}

	if len(views) == 0 {
		return nil, ErrNoValidViews
	}

	allEmpty := true
	for _, v := range views {
		if len(v.Polygon) > 0 {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		// spec.md §9 open question #4: a model where every view's
		// polygon is empty degenerates get_bounds to all zeros, which
		// would collapse the grid to a point. Treat it the same as
		// having found no valid views at all.
		return nil, ErrNoValidViews
	}

	return views, nil
}

// calculateBounds derives the world bounding box from the union of the
// views' polygon bounds. Z has no source of its own: once every view has
// been folded into the X and Y extents, Z is set to the final Y extent -
// a documented modeling assumption (imaged object roughly vertically
// symmetric), not a bug to be "fixed".
func (m *Model) calculateBounds() {
	xmin1, ymin1, xmax1, ymax1 := m.Views[0].GetBounds()
	xmin, xmax := xmin1, xmax1
	ymin, ymax := ymin1, ymax1
	zmin, zmax := ymin1, ymax1

	for _, v := range m.Views[1:] {
		x0, y0, x1, y1 := v.GetBounds()
		if x0 < xmin {
			xmin = x0
		}
		if x1 > xmax {
			xmax = x1
		}
		if y0 < ymin {
			ymin = y0
		}
		if y1 > ymax {
			ymax = y1
		}
	}

	zmin, zmax = ymin, ymax
	m.Bounds = [6]float32{xmin, xmax, ymin, ymax, zmin, zmax}
}

// initialReconstruction allocates the R*R*R occupancy grid, all true.
func (m *Model) initialReconstruction() {
	n := m.Resolution * m.Resolution * m.Resolution
	m.Space = make([]bool, n)
	for i := range m.Space {
		m.Space[i] = true
	}
}

func (m *Model) index(i, j, k int) int {
	r := m.Resolution
	return i*r*r + j*r + k
}

// interpolateBounds maps a voxel index in [0, R) to a world coordinate,
// sampling at cell corners (including both endpoints) rather than cell
// centers - intentional, per spec.md §4.5, to stay bit-compatible with
// the reference behavior.
func (m *Model) interpolateBounds(min, max float32, index int) float32 {
	if m.Resolution <= 1 {
		return min
	}
	return min + float32(index)*(max-min)/float32(m.Resolution-1)
}

// projectViewToVoxels sweeps the 2D grid aligned with the two world
// axes perpendicular to the view's dominant axis, and for every sample
// that falls outside the view's silhouette, carves the entire voxel
// column along the dominant axis (spec.md §4.5's carving table).
func (m *Model) projectViewToVoxels(v *view.View) {
	r := m.Resolution
	xmin, xmax := m.Bounds[0], m.Bounds[1]
	ymin, ymax := m.Bounds[2], m.Bounds[3]
	zmin, zmax := m.Bounds[4], m.Bounds[5]

	switch v.GetDirection() {
	case view.XY:
		for i := 0; i < r; i++ {
			wx := m.interpolateBounds(xmin, xmax, i)
			for j := 0; j < r; j++ {
				wy := m.interpolateBounds(ymin, ymax, j)
				if m.missesSilhouette(v, view.Vector3{X: wx, Y: wy, Z: 0}) {
					for k := 0; k < r; k++ {
						m.Space[m.index(i, j, k)] = false
					}
				}
			}
		}
	case view.XZ:
		for i := 0; i < r; i++ {
			wx := m.interpolateBounds(xmin, xmax, i)
			for j := 0; j < r; j++ {
				wz := m.interpolateBounds(zmin, zmax, j)
				if m.missesSilhouette(v, view.Vector3{X: wx, Y: 0, Z: wz}) {
					for k := 0; k < r; k++ {
						m.Space[m.index(i, k, j)] = false
					}
				}
			}
		}
	case view.YZ:
		for i := 0; i < r; i++ {
			wy := m.interpolateBounds(ymin, ymax, i)
			for j := 0; j < r; j++ {
				wz := m.interpolateBounds(zmin, zmax, j)
				if m.missesSilhouette(v, view.Vector3{X: 0, Y: wy, Z: wz}) {
					for k := 0; k < r; k++ {
						m.Space[m.index(k, i, j)] = false
					}
				}
			}
		}
	}
}

// missesSilhouette reports whether world point p, projected through v,
// falls outside v's contour. A geometry error (rank-deficient plane
// basis) is treated as fatal per spec.md §7: it would indicate a
// malformed camera that should have been caught as BadSchema.
func (m *Model) missesSilhouette(v *view.View, p view.Vector3) bool {
	plane, err := v.RealToPlane(p)
	if err != nil {
		panic(fmt.Errorf("carving %s: %w", v.Name, err))
	}
	return !v.IsPointInsideContour(plane)
}

// surfaceGeneration computes cube dimensions and enumerates the
// surviving voxels as cube centers, in the exact x-outermost,
// z-innermost traversal order spec.md §4.5 requires (downstream tests
// inspect this sequence).
func (m *Model) surfaceGeneration() {
	r := float32(m.Resolution)
	m.CubeDimensions = view.Vector3{
		X: (m.Bounds[1] - m.Bounds[0]) / r,
		Y: (m.Bounds[3] - m.Bounds[2]) / r,
		Z: (m.Bounds[5] - m.Bounds[4]) / r,
	}

	m.Cubes = m.Cubes[:0]
	for x := 0; x < m.Resolution; x++ {
		for y := 0; y < m.Resolution; y++ {
			for z := 0; z < m.Resolution; z++ {
				if !m.Space[m.index(x, y, z)] {
					continue
				}
				m.Cubes = append(m.Cubes, view.Vector3{
					X: m.interpolateBounds(m.Bounds[0], m.Bounds[1], x),
					Y: m.interpolateBounds(m.Bounds[2], m.Bounds[3], y),
					Z: m.interpolateBounds(m.Bounds[4], m.Bounds[5], z),
				})
			}
		}
	}
}

// InfoBlock renders the additional-info block described in spec.md §6.
func (m *Model) InfoBlock() string {
	return fmt.Sprintf(
		"[+] Model additional information:\n"+
			"[!] Model bounds: (%v, %v, %v, %v, %v, %v)\n"+
			"[!] Number of voxels: %d\n"+
			"[!] Number of active voxels: %d\n",
		m.Bounds[0], m.Bounds[1], m.Bounds[2], m.Bounds[3], m.Bounds[4], m.Bounds[5],
		m.Resolution*m.Resolution*m.Resolution,
		len(m.Cubes),
	)
}
